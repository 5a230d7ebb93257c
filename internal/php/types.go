package php

import "strings"

// TypeRef describes how an OpenAPI schema type surfaces in emitted PHP: the
// native type hint and the (possibly richer) docblock type.
type TypeRef struct {
	Hint    string
	Doc     string
	IsClass bool
	IsArray bool
}

// ScalarType maps an OpenAPI primitive type/format pair to PHP. Unknown types
// fall back to mixed so generation never fails on exotic schemas.
func ScalarType(openapiType, format string) TypeRef {
	switch openapiType {
	case "integer":
		return TypeRef{Hint: "int", Doc: "int"}
	case "number":
		return TypeRef{Hint: "float", Doc: "float"}
	case "boolean":
		return TypeRef{Hint: "bool", Doc: "bool"}
	case "string":
		switch format {
		case "date", "date-time":
			return TypeRef{Hint: "\\DateTimeInterface", Doc: "\\DateTimeInterface", IsClass: true}
		case "binary", "byte":
			return TypeRef{Hint: "string", Doc: "string"}
		default:
			return TypeRef{Hint: "string", Doc: "string"}
		}
	case "object":
		return TypeRef{Hint: "array", Doc: "array<string,mixed>"}
	default:
		return TypeRef{Hint: "mixed", Doc: "mixed"}
	}
}

// ClassType returns a TypeRef for a generated DTO class within a namespace.
func ClassType(namespace, class string) TypeRef {
	doc := "\\" + class
	if namespace != "" {
		doc = "\\" + namespace + "\\" + class
	}
	return TypeRef{Hint: class, Doc: doc, IsClass: true}
}

// ArrayOf wraps an element type into PHP's array hint with a typed docblock.
func ArrayOf(items TypeRef) TypeRef {
	doc := items.Doc
	if doc == "" {
		doc = "mixed"
	}
	return TypeRef{Hint: "array", Doc: doc + "[]", IsArray: true}
}

// Nullable prefixes the hint with ? and extends the docblock union. Mixed
// hints stay untouched since PHP rejects ?mixed.
func Nullable(ref TypeRef) TypeRef {
	if ref.Hint == "" || ref.Hint == "mixed" {
		return ref
	}
	out := ref
	if !strings.HasPrefix(ref.Hint, "?") {
		out.Hint = "?" + ref.Hint
	}
	out.Doc = ref.Doc + "|null"
	return out
}
