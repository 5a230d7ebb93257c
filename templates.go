package stubgen

import (
	"io/fs"

	"github.com/goliatone/go-stubgen/pkg/generators/laravel"
	"github.com/goliatone/go-stubgen/pkg/generators/lumen"
	"github.com/goliatone/go-stubgen/pkg/generators/slim"
	"github.com/goliatone/go-stubgen/pkg/generators/symfony"
)

// EmbeddedTemplates exposes the built-in template bundle for the named
// framework so callers can reuse or extend it without importing the generator
// package directly. Unknown names return nil.
func EmbeddedTemplates(name string) fs.FS {
	switch name {
	case laravel.Name:
		return laravel.TemplatesFS()
	case symfony.Name:
		return symfony.TemplatesFS()
	case slim.Name:
		return slim.TemplatesFS()
	case lumen.Name:
		return lumen.TemplatesFS()
	default:
		return nil
	}
}
