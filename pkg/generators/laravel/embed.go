package laravel

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.mustache
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded Laravel template set for consumers that
// want to extend or partially override it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
