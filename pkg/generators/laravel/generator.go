// Package laravel renders stub models into Laravel application boilerplate:
// one controller and handler interface per tag, a FormRequest per operation
// carrying a request body, DTO model classes, and a route file.
package laravel

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-stubgen/pkg/model"
	"github.com/goliatone/go-stubgen/pkg/render"
	rendertemplate "github.com/goliatone/go-stubgen/pkg/render/template"
	mustache "github.com/goliatone/go-stubgen/pkg/render/template/mustache"
)

// Name identifies this template set in the registry.
const Name = "laravel"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Generator struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the Laravel generator applying any provided options.
func New(options ...Option) (*Generator, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := mustache.New(mustache.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("laravel generator: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Generator{templates: renderer}, nil
}

func (g *Generator) Name() string {
	return Name
}

// Render emits the full Laravel artifact set for the stub model.
func (g *Generator) Render(ctx context.Context, stub model.Stub, options render.RenderOptions) (render.Files, error) {
	if g.templates == nil {
		return nil, fmt.Errorf("laravel generator: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespace := stub.Namespace
	if options.Namespace != "" {
		namespace = options.Namespace
	}

	var files render.Files
	emit := func(template, path string, data map[string]any) error {
		result, err := g.templates.Render("templates/"+template, data)
		if err != nil {
			return fmt.Errorf("laravel generator: render %s: %w", template, err)
		}
		files = append(files, render.File{Path: path, Contents: []byte(result)})
		return nil
	}

	for _, controller := range stub.Controllers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data := controllerContext(controller, namespace)
		if err := emit("controller", "app/Http/Controllers/"+controller.ClassName+".php", data); err != nil {
			return nil, err
		}
		if err := emit("api_interface", "app/Api/"+controller.InterfaceName+".php", data); err != nil {
			return nil, err
		}

		for _, op := range controller.Operations {
			if len(op.Rules) == 0 {
				continue
			}
			reqData := formRequestContext(op, namespace)
			className := reqData["className"].(string)
			if err := emit("form_request", "app/Http/Requests/"+className+".php", reqData); err != nil {
				return nil, err
			}
		}
	}

	for _, class := range stub.Models {
		if err := emit("model", "app/Models/"+class.Name+".php", modelContext(class, namespace)); err != nil {
			return nil, err
		}
	}

	if err := emit("routes", "routes/api.php", routesContext(stub, namespace)); err != nil {
		return nil, err
	}

	files.Sort()
	if err := files.Validate(); err != nil {
		return nil, fmt.Errorf("laravel generator: %w", err)
	}
	return files, nil
}
