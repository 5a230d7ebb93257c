package php

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var docPolicy = bluemonday.StrictPolicy()

// SanitizeDescription strips HTML markup from an OpenAPI description so it can
// be embedded in a PHP docblock, and collapses internal whitespace. Spec
// descriptions routinely carry markup that would otherwise leak into source.
func SanitizeDescription(input string) string {
	if input == "" {
		return ""
	}
	clean := docPolicy.Sanitize(input)
	clean = strings.ReplaceAll(clean, "*/", "*\\/")
	return strings.Join(strings.Fields(clean), " ")
}
