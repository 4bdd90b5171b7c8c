package config

import "regexp"

// refPattern matches #[Param] cross-references. The distinct ${VAR} syntax
// references runtime environment variables of the generated CLI and must be
// left untouched.
var refPattern = regexp.MustCompile(`#\[(\w+)\]`)

// ExpandRefs substitutes #[Param] placeholders in string values with the
// current string value of the referenced top-level key, repeating until a
// full pass changes nothing. Unresolved placeholders stay verbatim, so
// cyclic or self-referential chains terminate instead of looping, and
// non-string scalars pass through unchanged. The input mapping is not
// modified.
func ExpandRefs(values map[string]any) map[string]any {
	// A resolvable reference chain needs at most one pass per key; the cap
	// stops mutually-referencing placeholders that keep growing each other.
	current := values
	for pass := 0; pass <= len(values); pass++ {
		next, changed := expandValue(current, current)
		current = next.(map[string]any)
		if !changed {
			break
		}
	}
	return current
}

func expandValue(value any, root map[string]any) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		changed := false
		for key, item := range v {
			expanded, c := expandValue(item, root)
			out[key] = expanded
			changed = changed || c
		}
		return out, changed
	case []any:
		out := make([]any, len(v))
		changed := false
		for i, item := range v {
			expanded, c := expandValue(item, root)
			out[i] = expanded
			changed = changed || c
		}
		return out, changed
	case string:
		expanded := refPattern.ReplaceAllStringFunc(v, func(match string) string {
			key := match[2 : len(match)-1]
			if ref, ok := root[key].(string); ok {
				return ref
			}
			return match
		})
		return expanded, expanded != v
	default:
		return value, false
	}
}
