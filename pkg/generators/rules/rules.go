// Package rules translates the stub model's framework-neutral validation
// constraints into the native syntax of each supported framework. Laravel and
// Lumen share pipe-delimited rule strings; Slim consumes plain rule arrays;
// Symfony gets constraint constructor expressions.
package rules

import (
	"strings"

	"github.com/goliatone/go-stubgen/pkg/model"
)

// List renders constraints as individual rule tokens ("required", "string",
// "max:255"), the form Laravel-style validators accept inside arrays.
func List(constraints []model.Constraint) []string {
	out := make([]string, 0, len(constraints))
	for _, c := range constraints {
		if token := token(c); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// Pipe renders constraints as a single pipe-delimited Laravel rule string.
func Pipe(constraints []model.Constraint) string {
	return strings.Join(List(constraints), "|")
}

func token(c model.Constraint) string {
	switch c.Kind {
	case model.ConstraintRequired:
		return "required"
	case model.ConstraintNullable:
		return "nullable"
	case model.ConstraintType:
		return c.Value
	case model.ConstraintFormat:
		return c.Value
	case model.ConstraintMin, model.ConstraintMinLength, model.ConstraintMinItems:
		return "min:" + c.Value
	case model.ConstraintMax, model.ConstraintMaxLength, model.ConstraintMaxItems:
		return "max:" + c.Value
	case model.ConstraintPattern:
		return "regex:/" + strings.ReplaceAll(c.Value, "/", "\\/") + "/"
	case model.ConstraintEnum:
		return "in:" + c.Value
	default:
		return ""
	}
}

// Symfony renders constraints as Symfony validator constructor expressions,
// ready to interpolate into attribute or array syntax.
func Symfony(constraints []model.Constraint) []string {
	var out []string
	for _, c := range constraints {
		if expr := symfonyExpr(c); expr != "" {
			out = append(out, expr)
		}
	}
	return out
}

func symfonyExpr(c model.Constraint) string {
	switch c.Kind {
	case model.ConstraintRequired:
		return "new Assert\\NotNull()"
	case model.ConstraintNullable:
		return ""
	case model.ConstraintType:
		return "new Assert\\Type('" + symfonyType(c.Value) + "')"
	case model.ConstraintFormat:
		return symfonyFormat(c.Value)
	case model.ConstraintMin:
		return "new Assert\\GreaterThanOrEqual(" + c.Value + ")"
	case model.ConstraintMax:
		return "new Assert\\LessThanOrEqual(" + c.Value + ")"
	case model.ConstraintMinLength:
		return "new Assert\\Length(min: " + c.Value + ")"
	case model.ConstraintMaxLength:
		return "new Assert\\Length(max: " + c.Value + ")"
	case model.ConstraintMinItems:
		return "new Assert\\Count(min: " + c.Value + ")"
	case model.ConstraintMaxItems:
		return "new Assert\\Count(max: " + c.Value + ")"
	case model.ConstraintPattern:
		return "new Assert\\Regex('/" + strings.ReplaceAll(c.Value, "/", "\\/") + "/')"
	case model.ConstraintEnum:
		return "new Assert\\Choice(['" + strings.Join(strings.Split(c.Value, ","), "', '") + "'])"
	default:
		return ""
	}
}

func symfonyType(kind string) string {
	switch kind {
	case "numeric":
		return "numeric"
	case "integer":
		return "integer"
	case "boolean":
		return "bool"
	case "array":
		return "array"
	default:
		return "string"
	}
}

func symfonyFormat(format string) string {
	switch format {
	case "email":
		return "new Assert\\Email()"
	case "uuid":
		return "new Assert\\Uuid()"
	case "date":
		return "new Assert\\Date()"
	case "url", "uri":
		return "new Assert\\Url()"
	case "ip":
		return "new Assert\\Ip()"
	default:
		return ""
	}
}
