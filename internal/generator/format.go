package generator

import (
	"golang.org/x/tools/imports"
)

// formatSource runs generated Go source through goimports, which also prunes
// imports a particular rendering did not end up using.
func formatSource(src []byte) ([]byte, error) {
	return imports.Process("", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
}
