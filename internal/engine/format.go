package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thoreinstein/mdvars/internal/datapath"
)

// objectFallback stands in for a mapping that cannot be serialized. JSON
// marshaling of yaml-decoded trees essentially never fails, but the
// substitution pipeline must not.
const objectFallback = "[object]"

// lookup resolves a placeholder name against the data tree, honoring the
// nested-properties toggle.
func lookup(data map[string]any, name string, opts Options) (any, bool) {
	if opts.SupportNestedProperties {
		return datapath.Resolve(data, name, opts.CaseInsensitive)
	}
	return datapath.ResolveKey(data, name, opts.CaseInsensitive)
}

// FormatValue renders a resolved value using the substitution formatting
// policy. Exposed for hosts that display single values outside a
// substitution pass.
func FormatValue(v any, opts Options) string {
	return formatValue(v, opts)
}

// formatValue renders a resolved value as replacement text. Sequences join
// their elements with the configured separator, mappings serialize to
// compact JSON, scalars use their natural text form. A nil value renders
// empty, which the caller treats as missing.
func formatValue(v any, opts Options) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, el := range val {
			parts[i] = formatValue(el, opts)
		}
		return strings.Join(parts, opts.joinSeparator())
	case map[string]any:
		b, err := json.Marshal(val)
		if err != nil {
			return objectFallback
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}
