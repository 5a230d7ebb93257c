package mustache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/cbroglie/mustache"

	rendertemplate "github.com/goliatone/go-stubgen/pkg/render/template"
)

// Option configures the mustache adapter before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
}

// WithFS configures the engine to load templates and partials from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithDir loads templates from a directory on disk.
func WithDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithExtension overrides the default ".mustache" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine satisfies template.TemplateRenderer using cbroglie/mustache.
// Partials resolve against the same fs.FS as named templates.
type Engine struct {
	mu sync.RWMutex

	fs       fs.FS
	ext      string
	partials mustache.PartialProvider
	cache    map[string]*mustache.Template
}

// Ensure Engine implements the TemplateRenderer interface.
var _ rendertemplate.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".mustache"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.templates == nil {
		return nil, errors.New("mustache: need to provide a template fs or directory")
	}

	engine := &Engine{
		fs:    cfg.templates,
		ext:   cfg.extension,
		cache: make(map[string]*mustache.Template),
	}
	engine.partials = &fsPartials{fs: cfg.templates, ext: cfg.extension}
	return engine, nil
}

// Render loads and renders a named template from the configured fs.FS.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.fs == nil {
		return "", errors.New("mustache: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.getTemplate(path)
	if err != nil {
		return "", err
	}

	rendered, err := tmpl.Render(data)
	if err != nil {
		return "", fmt.Errorf("mustache: render template %q: %w", path, err)
	}
	return tee(rendered, out)
}

// RenderString renders inline template content with the engine's partials.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil {
		return "", errors.New("mustache: engine is nil")
	}

	tmpl, err := mustache.ParseStringPartials(templateContent, e.partials)
	if err != nil {
		return "", fmt.Errorf("mustache: parse template string: %w", err)
	}
	rendered, err := tmpl.Render(data)
	if err != nil {
		return "", fmt.Errorf("mustache: render template string: %w", err)
	}
	return tee(rendered, out)
}

func (e *Engine) getTemplate(path string) (*mustache.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}

	raw, err := fs.ReadFile(e.fs, path)
	if err != nil {
		return nil, fmt.Errorf("mustache: load template %q: %w", path, err)
	}
	tmpl, err := mustache.ParseStringPartials(string(raw), e.partials)
	if err != nil {
		return nil, fmt.Errorf("mustache: parse template %q: %w", path, err)
	}

	e.cache[path] = tmpl
	return tmpl, nil
}

func tee(rendered string, out []io.Writer) (string, error) {
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// fsPartials resolves {{> name}} references against the template fs.
type fsPartials struct {
	fs  fs.FS
	ext string
}

func (p *fsPartials) Get(name string) (string, error) {
	path := name
	if !strings.HasSuffix(path, p.ext) {
		path += p.ext
	}
	raw, err := fs.ReadFile(p.fs, path)
	if err != nil {
		// Missing partials render empty, matching mustache's lenient spec.
		return "", nil
	}
	return string(raw), nil
}
