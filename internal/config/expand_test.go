package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandRefs(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name: "single reference",
			input: map[string]any{
				"CommandName": "my-cli",
				"MainDir":     "${HOME}/.#[CommandName]",
			},
			expected: map[string]any{
				"CommandName": "my-cli",
				"MainDir":     "${HOME}/.my-cli",
			},
		},
		{
			name: "chained references reach a fixed point",
			input: map[string]any{
				"CommandName": "my-cli",
				"MainDir":     "${HOME}/.#[CommandName]",
				"ProfileFile": "#[MainDir]/profiles.yaml",
			},
			expected: map[string]any{
				"CommandName": "my-cli",
				"MainDir":     "${HOME}/.my-cli",
				"ProfileFile": "${HOME}/.my-cli/profiles.yaml",
			},
		},
		{
			name: "unresolved reference left verbatim",
			input: map[string]any{
				"LogFile": "#[Missing]/out.log",
			},
			expected: map[string]any{
				"LogFile": "#[Missing]/out.log",
			},
		},
		{
			name: "env var syntax untouched",
			input: map[string]any{
				"MainDir": "${HOME}/.cli",
			},
			expected: map[string]any{
				"MainDir": "${HOME}/.cli",
			},
		},
		{
			name: "non-string scalars untouched",
			input: map[string]any{
				"Timeout": 30,
				"Colors":  true,
			},
			expected: map[string]any{
				"Timeout": 30,
				"Colors":  true,
			},
		},
		{
			name: "nested mappings and sequences",
			input: map[string]any{
				"CommandName": "my-cli",
				"Extra": map[string]any{
					"Banner": "Welcome to #[CommandName]",
					"Paths":  []any{"#[CommandName]/a", 7},
				},
			},
			expected: map[string]any{
				"CommandName": "my-cli",
				"Extra": map[string]any{
					"Banner": "Welcome to my-cli",
					"Paths":  []any{"my-cli/a", 7},
				},
			},
		},
		{
			name: "non-string reference target left verbatim",
			input: map[string]any{
				"Timeout": 30,
				"Label":   "timeout=#[Timeout]",
			},
			expected: map[string]any{
				"Timeout": 30,
				"Label":   "timeout=#[Timeout]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ExpandRefs(tt.input))
		})
	}
}

func TestExpandRefsTerminatesOnCycles(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{
			name:  "self reference",
			input: map[string]any{"A": "#[A]"},
		},
		{
			name:  "mutual references",
			input: map[string]any{"A": "#[B]", "B": "#[A]"},
		},
		{
			name:  "growing cycle",
			input: map[string]any{"A": "x#[B]", "B": "y#[A]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only termination matters here.
			require.NotNil(t, ExpandRefs(tt.input))
		})
	}
}

func TestExpandRefsDoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"CommandName": "my-cli",
		"MainDir":     "${HOME}/.#[CommandName]",
	}
	_ = ExpandRefs(input)
	require.Equal(t, "${HOME}/.#[CommandName]", input["MainDir"])
}
