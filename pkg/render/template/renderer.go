package template

import "io"

// TemplateRenderer is the engine seam generators rely on. The built-in
// framework template sets use the mustache adapter; callers bringing richer
// custom sets can plug in the gotemplate adapter or their own engine.
type TemplateRenderer interface {
	// Render resolves name against the engine's template source and renders
	// it with data, optionally copying the output to the supplied writers.
	Render(name string, data any, out ...io.Writer) (string, error)

	// RenderString treats the first argument as inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
