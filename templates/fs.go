// Package templates embeds the project template set rendered by the
// generator. Files ending in .tmpl are rendered; the rest are copied.
package templates

import "embed"

//go:embed all:project
var FS embed.FS
