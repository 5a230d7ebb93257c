package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

// extensionNamespace is the vendor extension prefix carried through to the
// stub model. Everything else is dropped to keep models small.
const extensionNamespace = "x-stubgen"

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Nullable:    src.Nullable,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		properties := make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			properties[name] = convertSchema(property)
		}
		schema.Properties = properties
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	if src.Min != nil {
		value := *src.Min
		schema.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		schema.Maximum = &value
	}
	schema.ExclusiveMinimum = src.ExclusiveMin
	schema.ExclusiveMaximum = src.ExclusiveMax
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	if src.MinItems != 0 {
		value := int(src.MinItems)
		schema.MinItems = &value
	}
	if src.MaxItems != nil {
		value := int(*src.MaxItems)
		schema.MaxItems = &value
	}
	if src.Pattern != "" {
		schema.Pattern = src.Pattern
	}
	schema.Extensions = extractExtensions(src.Extensions)
	mergeAllOf(&schema, src.AllOf)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any)
	for key, value := range raw {
		if key != extensionNamespace && !strings.HasPrefix(key, extensionNamespace+"-") {
			continue
		}
		if value == nil {
			continue
		}
		if mapped, ok := value.(map[string]any); ok {
			clone := make(map[string]any, len(mapped))
			for k, v := range mapped {
				clone[k] = v
			}
			if len(clone) == 0 {
				continue
			}
			result[key] = clone
			continue
		}
		result[key] = value
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// mergeAllOf flattens allOf compositions into the target schema: properties
// and required lists merge, scalar attributes keep the first non-empty value.
func mergeAllOf(target *pkgopenapi.Schema, refs openapi3.SchemaRefs) {
	if target == nil || len(refs) == 0 {
		return
	}
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		part := convertSchema(ref)
		if target.Type == "" {
			target.Type = part.Type
		}
		if target.Description == "" {
			target.Description = part.Description
		}
		if len(part.Required) > 0 {
			target.Required = append(target.Required, part.Required...)
		}
		if len(part.Properties) > 0 {
			if target.Properties == nil {
				target.Properties = make(map[string]pkgopenapi.Schema, len(part.Properties))
			}
			for name, prop := range part.Properties {
				if _, exists := target.Properties[name]; !exists {
					target.Properties[name] = prop
				}
			}
		}
		if len(part.Extensions) > 0 {
			if target.Extensions == nil {
				target.Extensions = make(map[string]any, len(part.Extensions))
			}
			for key, value := range part.Extensions {
				target.Extensions[key] = value
			}
		}
	}
}
