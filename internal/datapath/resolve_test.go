package datapath

import (
	"reflect"
	"testing"
)

func testData() map[string]any {
	return map[string]any{
		"name": "Ann",
		"age":  30,
		"server": map[string]any{
			"ip":    "10.0.0.1",
			"Ports": []any{22, 80, 443},
		},
		"items": []any{
			map[string]any{"id": "first"},
			map[string]any{"id": "second"},
		},
		"blank":   "",
		"nothing": nil,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		caseInsensitive bool
		want            any
		wantOK          bool
	}{
		{name: "top-level scalar", path: "name", want: "Ann", wantOK: true},
		{name: "nested scalar", path: "server.ip", want: "10.0.0.1", wantOK: true},
		{name: "sequence index", path: "server.Ports[1]", want: 80, wantOK: true},
		{name: "index then key", path: "items[1].id", want: "second", wantOK: true},
		{name: "whole sequence returned as-is", path: "server.Ports", want: []any{22, 80, 443}, wantOK: true},
		{name: "whole mapping returned as-is", path: "server", want: map[string]any{"ip": "10.0.0.1", "Ports": []any{22, 80, 443}}, wantOK: true},
		{name: "missing key", path: "missing", wantOK: false},
		{name: "missing nested key", path: "server.port", wantOK: false},
		{name: "index out of bounds", path: "server.Ports[5]", wantOK: false},
		{name: "index above ceiling", path: "server.Ports[1001]", wantOK: false},
		{name: "index into non-sequence", path: "server.ip[0]", wantOK: false},
		{name: "descend through scalar", path: "name.first", wantOK: false},
		{name: "descend through null", path: "nothing.x", wantOK: false},
		{name: "empty segment", path: "server..ip", wantOK: false},
		{name: "terminal null resolves", path: "nothing", want: nil, wantOK: true},
		{name: "terminal empty string resolves", path: "blank", want: "", wantOK: true},
		{name: "case mismatch without flag", path: "server.IP", wantOK: false},
		{name: "case mismatch with flag", path: "SERVER.Ip", caseInsensitive: true, want: "10.0.0.1", wantOK: true},
		{name: "forbidden key", path: "__proto__", wantOK: false},
		{name: "forbidden key nested", path: "server.constructor", wantOK: false},
		{name: "forbidden key mixed case", path: "PROTOTYPE", caseInsensitive: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(testData(), tt.path, tt.caseInsensitive)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve_ExactMatchWinsOverCaseInsensitive(t *testing.T) {
	data := map[string]any{
		"Name": "exact",
		"name": "lower",
	}
	got, ok := Resolve(data, "name", true)
	if !ok || got != "lower" {
		t.Errorf("exact-case key should win, got %v (ok=%v)", got, ok)
	}
}

func TestResolve_CaseInsensitiveDeterministic(t *testing.T) {
	data := map[string]any{
		"Name": "a",
		"NAME": "b",
	}

	// Map iteration order varies between runs, so an ambiguous fold must
	// still resolve to the same key every time. "NAME" sorts before "Name".
	for i := 0; i < 200; i++ {
		got, ok := Resolve(data, "name", true)
		if !ok {
			t.Fatal("Resolve(name) failed")
		}
		if got != "b" {
			t.Fatalf("iteration %d: Resolve(name) = %v, want b", i, got)
		}
	}
}

func TestResolve_NoSideEffects(t *testing.T) {
	data := testData()
	want := testData()

	Resolve(data, "server.Ports[2]", false)
	Resolve(data, "missing.deeply.nested[4]", true)

	if !reflect.DeepEqual(data, want) {
		t.Error("Resolve must not mutate its input")
	}
}
