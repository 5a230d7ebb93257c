package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

// maxRuleDepth bounds how far into nested payloads validation rules are
// derived. Deeper structure is still typed through DTOs, it just stops
// producing dotted rule paths.
const maxRuleDepth = 3

// rulesForBody derives framework-neutral validation rules from an object
// request body. Non-object payloads produce no field rules; their shape is
// enforced through the typed controller signature instead.
func rulesForBody(schema pkgopenapi.Schema) []FieldRules {
	if !schema.IsObject() {
		return nil
	}
	return rulesForObject(schema, "", 0)
}

func rulesForObject(schema pkgopenapi.Schema, prefix string, depth int) []FieldRules {
	if depth >= maxRuleDepth || len(schema.Properties) == 0 {
		return nil
	}

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []FieldRules
	for _, name := range names {
		prop := schema.Properties[name]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		_, required := requiredSet[name]

		if constraints := constraintsForSchema(prop, required); len(constraints) > 0 {
			out = append(out, FieldRules{Field: path, Constraints: constraints})
		}

		switch {
		case prop.IsObject():
			out = append(out, rulesForObject(prop, path, depth+1)...)
		case prop.Type == "array" && prop.Items != nil:
			itemPath := path + ".*"
			if constraints := constraintsForSchema(*prop.Items, false); len(constraints) > 0 {
				out = append(out, FieldRules{Field: itemPath, Constraints: constraints})
			}
			if prop.Items.IsObject() {
				out = append(out, rulesForObject(*prop.Items, itemPath, depth+1)...)
			}
		}
	}
	return out
}

// constraintsForSchema maps one schema's OpenAPI constraints into canonical
// rule constants. Ordering is stable: presence, type, bounds, then shape.
func constraintsForSchema(schema pkgopenapi.Schema, required bool) []Constraint {
	var out []Constraint

	switch {
	case required:
		out = append(out, Constraint{Kind: ConstraintRequired})
	case schema.Nullable:
		out = append(out, Constraint{Kind: ConstraintNullable})
	}

	if kind := typeConstraint(schema.Type); kind != "" {
		out = append(out, Constraint{Kind: ConstraintType, Value: kind})
	}
	if format := formatConstraint(schema.Format); format != "" {
		out = append(out, Constraint{Kind: ConstraintFormat, Value: format})
	}

	if schema.Minimum != nil {
		out = append(out, Constraint{Kind: ConstraintMin, Value: formatNumber(*schema.Minimum, schema.ExclusiveMinimum, +1)})
	}
	if schema.Maximum != nil {
		out = append(out, Constraint{Kind: ConstraintMax, Value: formatNumber(*schema.Maximum, schema.ExclusiveMaximum, -1)})
	}
	if schema.MinLength != nil {
		out = append(out, Constraint{Kind: ConstraintMinLength, Value: strconv.Itoa(*schema.MinLength)})
	}
	if schema.MaxLength != nil {
		out = append(out, Constraint{Kind: ConstraintMaxLength, Value: strconv.Itoa(*schema.MaxLength)})
	}
	if schema.MinItems != nil {
		out = append(out, Constraint{Kind: ConstraintMinItems, Value: strconv.Itoa(*schema.MinItems)})
	}
	if schema.MaxItems != nil {
		out = append(out, Constraint{Kind: ConstraintMaxItems, Value: strconv.Itoa(*schema.MaxItems)})
	}
	if schema.Pattern != "" {
		out = append(out, Constraint{Kind: ConstraintPattern, Value: schema.Pattern})
	}
	if len(schema.Enum) > 0 {
		values := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			values = append(values, fmt.Sprint(value))
		}
		out = append(out, Constraint{Kind: ConstraintEnum, Value: strings.Join(values, ",")})
	}

	return out
}

func typeConstraint(openapiType string) string {
	switch openapiType {
	case "string":
		return "string"
	case "integer":
		return "integer"
	case "number":
		return "numeric"
	case "boolean":
		return "boolean"
	case "array":
		return "array"
	default:
		return ""
	}
}

func formatConstraint(format string) string {
	switch format {
	case "email", "uuid", "date", "uri", "url":
		return format
	case "date-time":
		return "date"
	case "ipv4", "ipv6":
		return "ip"
	default:
		return ""
	}
}

// formatNumber renders a numeric bound. Exclusive bounds shift integral
// thresholds by one step since most PHP validators only support inclusive
// comparisons.
func formatNumber(value float64, exclusive bool, step float64) string {
	if exclusive && value == float64(int64(value)) {
		value += step
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
