// Package templates embeds the thin HTML views so the binary is
// self-contained and tests can render from any working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
