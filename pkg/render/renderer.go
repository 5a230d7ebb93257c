package render

import (
	"context"

	"github.com/goliatone/go-stubgen/pkg/model"
)

// Generator renders a stub model into a set of framework source files. One
// implementation exists per target framework template set.
type Generator interface {
	Name() string
	Render(ctx context.Context, stub model.Stub, options RenderOptions) (Files, error)
}
