package lumen

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.mustache
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded Lumen template set.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
