package render

// RenderOptions carries per-request overrides generators apply on top of
// their template-set defaults.
type RenderOptions struct {
	// Namespace overrides the root PHP namespace baked into the stub model.
	Namespace string

	// Properties exposes free-form key/value pairs to the template context,
	// mirroring the additional-properties mechanism of spec-driven generator
	// configs.
	Properties map[string]string
}

// Property returns the named additional property or the fallback when unset.
func (o RenderOptions) Property(key, fallback string) string {
	if value, ok := o.Properties[key]; ok && value != "" {
		return value
	}
	return fallback
}
