package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userId", "user-id"},
		{"user_id", "user-id"},
		{"user-id", "user-id"},
		{"UserId", "user-id"},
		{"GetUserById", "get-user-by-id"},
		{"API Keys", "api-keys"},
		{"APIKeys", "apikeys"},
		{"hello world", "hello-world"},
		{"_leading", "leading"},
		{"trailing_", "trailing"},
		{"--double--", "double"},
		{"", ""},
		{"a", "a"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, KebabCase(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userId", "user_id"},
		{"user-id", "user_id"},
		{"user_id", "user_id"},
		{"GetUserById", "get_user_by_id"},
		{"API Keys", "api_keys"},
		{"helloWorld", "hello_world"},
		{"", ""},
		{"ABC", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my-project", "My Project"},
		{"my_project", "My Project"},
		{"myProject", "My Project"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

// Normalizing an already-normalized identifier is a no-op.
func TestNormalizationIdempotent(t *testing.T) {
	inputs := []string{"userId", "orderItemId", "api_key", "x-request-id"}

	for _, in := range inputs {
		kebab := KebabCase(in)
		require.Equal(t, kebab, KebabCase(kebab))

		snake := SnakeCase(in)
		require.Equal(t, snake, SnakeCase(snake))

		require.Equal(t, snake, SnakeCase(kebab))
		require.Equal(t, kebab, KebabCase(snake))
	}
}
