package datapath

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]any
		path   string
		value  any
		wantOK bool
		want   map[string]any
	}{
		{
			name:   "top-level key",
			data:   map[string]any{},
			path:   "name",
			value:  "Ann",
			wantOK: true,
			want:   map[string]any{"name": "Ann"},
		},
		{
			name:   "creates intermediate mappings",
			data:   map[string]any{},
			path:   "a.b.c",
			value:  1,
			wantOK: true,
			want:   map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
		},
		{
			name:   "overwrites scalar intermediate with mapping",
			data:   map[string]any{"a": "scalar"},
			path:   "a.b",
			value:  true,
			wantOK: true,
			want:   map[string]any{"a": map[string]any{"b": true}},
		},
		{
			name:   "sets existing sequence slot",
			data:   map[string]any{"ports": []any{22, 80}},
			path:   "ports[1]",
			value:  8080,
			wantOK: true,
			want:   map[string]any{"ports": []any{22, 8080}},
		},
		{
			name:   "grows sequence with nil padding",
			data:   map[string]any{"ports": []any{22}},
			path:   "ports[3]",
			value:  443,
			wantOK: true,
			want:   map[string]any{"ports": []any{22, nil, nil, 443}},
		},
		{
			name:   "replaces non-sequence with sequence",
			data:   map[string]any{"ports": "not a list"},
			path:   "ports[0]",
			value:  22,
			wantOK: true,
			want:   map[string]any{"ports": []any{22}},
		},
		{
			name:   "intermediate indexed segment",
			data:   map[string]any{},
			path:   "hosts[1].ip",
			value:  "10.0.0.2",
			wantOK: true,
			want:   map[string]any{"hosts": []any{nil, map[string]any{"ip": "10.0.0.2"}}},
		},
		{
			name:   "index above ceiling is a no-op",
			data:   map[string]any{"ports": []any{22}},
			path:   "ports[1001]",
			value:  1,
			wantOK: false,
			want:   map[string]any{"ports": []any{22}},
		},
		{
			name:   "index at ceiling is allowed",
			data:   map[string]any{},
			path:   "big[1000]",
			value:  "end",
			wantOK: true,
		},
		{
			name:   "forbidden terminal segment",
			data:   map[string]any{"a": map[string]any{}},
			path:   "a.__proto__",
			value:  "x",
			wantOK: false,
			want:   map[string]any{"a": map[string]any{}},
		},
		{
			name:   "forbidden intermediate segment aborts with no partial effect",
			data:   map[string]any{},
			path:   "constructor.polluted",
			value:  "x",
			wantOK: false,
			want:   map[string]any{},
		},
		{
			name:   "forbidden segment deep in path leaves earlier segments untouched",
			data:   map[string]any{},
			path:   "a.b.prototype.c",
			value:  "x",
			wantOK: false,
			want:   map[string]any{},
		},
		{
			name:   "empty path",
			data:   map[string]any{},
			path:   "",
			value:  "x",
			wantOK: false,
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := Set(tt.data, tt.path, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("Set(%q) = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if tt.want != nil && !reflect.DeepEqual(tt.data, tt.want) {
				t.Errorf("data = %#v, want %#v", tt.data, tt.want)
			}
		})
	}
}

func TestSet_CeilingBoundsGrowth(t *testing.T) {
	data := map[string]any{}
	if !Set(data, "big[1000]", "end") {
		t.Fatal("index 1000 should be accepted")
	}
	seq := data["big"].([]any)
	if len(seq) != 1001 {
		t.Fatalf("sequence length = %d, want 1001", len(seq))
	}
	if seq[1000] != "end" {
		t.Errorf("seq[1000] = %v", seq[1000])
	}
}

func TestSet_RoundTripWithResolve(t *testing.T) {
	data := map[string]any{}
	if !Set(data, "server.hosts[0].name", "alpha") {
		t.Fatal("Set failed")
	}
	got, ok := Resolve(data, "server.hosts[0].name", false)
	if !ok || got != "alpha" {
		t.Errorf("Resolve after Set = %v (ok=%v), want alpha", got, ok)
	}
}
