package encode

import (
	"strings"
	"testing"
)

func TestValue(t *testing.T) {
	mapping := map[string]any{"ip": "10.0.0.1", "ports": []any{22, 80}}

	tests := []struct {
		name    string
		v       any
		format  Format
		want    []string
		wantErr bool
	}{
		{
			name:   "yaml mapping",
			v:      mapping,
			format: FormatYAML,
			want:   []string{"ip: 10.0.0.1", "ports:", "- 22"},
		},
		{
			name:   "yaml scalar",
			v:      "10.0.0.1",
			format: FormatYAML,
			want:   []string{"10.0.0.1"},
		},
		{
			name:   "json mapping",
			v:      mapping,
			format: FormatJSON,
			want:   []string{`"ip": "10.0.0.1"`, `"ports": [`},
		},
		{
			name:   "toml mapping",
			v:      mapping,
			format: FormatTOML,
			want:   []string{"ip = '10.0.0.1'", "ports = [22, 80]"},
		},
		{
			name:    "toml rejects scalars",
			v:       "just a string",
			format:  FormatTOML,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Value(tt.v, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Value() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output should end with newline: %q", got)
			}
			for _, frag := range tt.want {
				if !strings.Contains(got, frag) {
					t.Errorf("output missing %q:\n%s", frag, got)
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("TOML"); err != nil {
		t.Errorf("format names should be case-insensitive: %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("unknown formats should error")
	}
}
