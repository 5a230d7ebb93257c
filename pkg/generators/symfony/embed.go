package symfony

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.mustache
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded Symfony template set.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
