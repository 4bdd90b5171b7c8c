package generator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/gmarciani/cliwizard/internal/model"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"flagDefault": flagDefault,
		"flagHelp":    flagHelp,
		"yamlValue":   yamlValue,
	}
}

// flagDefault renders the default value literal for a flag registration,
// matching the Go type the flag's kind maps to.
func flagDefault(kind model.Kind, def any) string {
	switch kind {
	case model.KindInteger:
		switch v := def.(type) {
		case int, int64, uint64:
			return fmt.Sprint(v)
		case float64:
			return strconv.Itoa(int(v))
		}
		return "0"
	case model.KindFloat:
		switch v := def.(type) {
		case int, int64, float64:
			return fmt.Sprint(v)
		}
		return "0"
	case model.KindBool:
		if b, ok := def.(bool); ok && b {
			return "true"
		}
		return "false"
	default:
		if def == nil {
			return `""`
		}
		return strconv.Quote(fmt.Sprint(def))
	}
}

// flagHelp renders the help text for a flag. Parameters with an enum list
// the allowed values after the description.
func flagHelp(v any) string {
	switch p := v.(type) {
	case model.Parameter:
		help := p.Description
		if help == "" {
			help = p.Name
		}
		if len(p.Enum) > 0 {
			values := make([]string, len(p.Enum))
			for i, e := range p.Enum {
				values[i] = fmt.Sprint(e)
			}
			help += " (one of: " + strings.Join(values, ", ") + ")"
		}
		return help
	case model.RequestBodyProperty:
		if p.Description != "" {
			return p.Description
		}
		return p.Name
	default:
		return fmt.Sprint(v)
	}
}

// yamlValue renders a configuration value as a YAML scalar or flow
// collection. Strings are always quoted so values like "1.0.0" or "#FFFFFF"
// survive a YAML round trip unchanged.
func yamlValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return strconv.Quote(val)
	case []string:
		items := make([]string, len(val))
		for i, s := range val {
			items[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []any:
		items := make([]string, len(val))
		for i, e := range val {
			items[i] = yamlValue(e)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]string:
		if len(val) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = k + ": " + strconv.Quote(val[k])
		}
		return "{" + strings.Join(items, ", ") + "}"
	case map[string]any:
		if len(val) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = k + ": " + yamlValue(val[k])
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		return fmt.Sprint(val)
	}
}
