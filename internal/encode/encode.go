// Package encode renders resolved frontmatter values as YAML, JSON or TOML
// for CLI output.
package encode

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatYAML renders the value as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON renders the value as indented JSON.
	FormatJSON Format = "json"
	// FormatTOML renders the value as TOML; only mappings qualify.
	FormatTOML Format = "toml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", errors.Newf("unknown output format %q (yaml, json, toml)", s)
}

// Value renders v in the requested format. The result always ends with a
// newline.
func Value(v any, f Format) (string, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encoding JSON")
		}
		return string(b) + "\n", nil
	case FormatTOML:
		if _, ok := v.(map[string]any); !ok {
			return "", errors.New("TOML output requires a mapping value")
		}
		b, err := toml.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, "encoding TOML")
		}
		return string(b), nil
	default:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, "encoding YAML")
		}
		return string(b), nil
	}
}
