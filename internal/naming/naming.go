// Package naming converts raw API identifiers between camelCase,
// snake_case and kebab-case. All functions are pure; identical input
// always yields identical output.
package naming

import (
	"strings"
	"unicode"
)

// KebabCase lowercases s and joins its words with "-".
// "userId", "user_id" and "user-id" all normalize to "user-id".
func KebabCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// SnakeCase lowercases s and joins its words with "_".
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// TitleCase capitalizes each word and joins with a space.
// Used for deriving human-readable project names.
func TitleCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// splitWords breaks an identifier at existing separators and at
// lower-to-upper case transitions. A run of uppercase letters counts as a
// single word, so acronyms are never split per letter.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
