package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	php "github.com/goliatone/go-stubgen/internal/php"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

// classRegistry accumulates DTO class models while operations are built.
// Component schemas referenced from several operations register once, keyed
// by their $ref name; inline object payloads get synthesised names.
type classRegistry struct {
	namespace string
	classes   map[string]*ClassModel
	names     *php.Deduper
	byRef     map[string]string
}

func newClassRegistry(namespace string) *classRegistry {
	return &classRegistry{
		namespace: namespace,
		classes:   make(map[string]*ClassModel),
		names:     php.NewDeduper(),
		byRef:     make(map[string]string),
	}
}

var errNoType = errors.New("model builder: schema has no resolvable type")

// resolve maps a schema to its PHP type, registering DTO classes for object
// payloads. The returned string is the registered class name, empty for
// scalars and arrays.
func (r *classRegistry) resolve(schema pkgopenapi.Schema, fallback string) (TypeRef, string, error) {
	switch {
	case schema.Type == "array":
		if schema.Items == nil {
			return TypeRef{}, "", fmt.Errorf("model builder: array schema %q missing items", fallback)
		}
		items, _, err := r.resolve(*schema.Items, itemFallback(fallback))
		if err != nil {
			return TypeRef{}, "", err
		}
		return php.ArrayOf(items), "", nil

	case schema.IsObject() || schema.Ref != "":
		name, err := r.register(schema, fallback)
		if err != nil {
			return TypeRef{}, "", err
		}
		ref := php.ClassType(r.namespace, name)
		if schema.Nullable {
			ref = php.Nullable(ref)
		}
		return ref, name, nil

	case schema.Type != "":
		ref := php.ScalarType(schema.Type, schema.Format)
		if schema.Nullable {
			ref = php.Nullable(ref)
		}
		return ref, "", nil

	default:
		return TypeRef{}, "", errNoType
	}
}

// register adds a class model for an object schema and returns its name.
// Registration claims the name before walking properties so self-referencing
// schemas terminate.
func (r *classRegistry) register(schema pkgopenapi.Schema, fallback string) (string, error) {
	if schema.Ref != "" {
		if name, ok := r.byRef[schema.Ref]; ok {
			return name, nil
		}
	}

	name := refBaseName(schema.Ref)
	schemaName := name
	if name == "" {
		name = fallback
	}
	name = php.ClassName(name)
	if name == "" {
		return "", errNoType
	}
	name = r.names.Claim(name)

	class := &ClassModel{
		Name:        name,
		SchemaName:  schemaName,
		Description: php.SanitizeDescription(schema.Description),
	}
	r.classes[name] = class
	if schema.Ref != "" {
		r.byRef[schema.Ref] = name
	}

	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, item := range schema.Required {
		requiredSet[item] = struct{}{}
	}

	for _, propName := range propNames {
		propSchema := schema.Properties[propName]
		propType, _, err := r.resolve(propSchema, name+php.ClassName(propName))
		if err != nil {
			if errors.Is(err, errNoType) {
				propType = php.ScalarType("", "")
			} else {
				return "", err
			}
		}
		if propSchema.Nullable && !propType.IsArray {
			propType = php.Nullable(propType)
		}

		_, required := requiredSet[propName]
		prop := Property{
			Name:        propName,
			VarName:     php.CamelCase(propName),
			Type:        propType,
			Required:    required,
			Nullable:    propSchema.Nullable,
			Description: php.SanitizeDescription(propSchema.Description),
			Default:     propSchema.Default,
		}
		for _, value := range propSchema.Enum {
			prop.Enum = append(prop.Enum, fmt.Sprint(value))
		}
		class.Properties = append(class.Properties, prop)
	}

	return name, nil
}

func (r *classRegistry) sorted() []ClassModel {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ClassModel, 0, len(names))
	for _, name := range names {
		out = append(out, *r.classes[name])
	}
	return out
}

func refBaseName(ref string) string {
	if ref == "" {
		return ""
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

func itemFallback(fallback string) string {
	if strings.HasSuffix(fallback, "Request") || strings.HasSuffix(fallback, "Response") {
		return strings.TrimSuffix(strings.TrimSuffix(fallback, "Request"), "Response") + "Item"
	}
	return fallback + "Item"
}
