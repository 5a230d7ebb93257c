package model

import php "github.com/goliatone/go-stubgen/internal/php"

// TypeRef re-exports the PHP type mapping used across the stub model.
type TypeRef = php.TypeRef

// Stub is the top-level representation generators consume: one controller per
// tag, one class model per DTO, plus document metadata.
type Stub struct {
	Title       string            `json:"title,omitempty"`
	Version     string            `json:"version,omitempty"`
	Description string            `json:"description,omitempty"`
	Namespace   string            `json:"namespace"`
	Controllers []Controller      `json:"controllers"`
	Models      []ClassModel      `json:"models,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Controller groups the operations sharing a primary tag.
type Controller struct {
	Tag           string      `json:"tag"`
	ClassName     string      `json:"className"`
	InterfaceName string      `json:"interfaceName"`
	Description   string      `json:"description,omitempty"`
	Operations    []Operation `json:"operations"`
}

// Operation models a single route handler: routing metadata, typed
// parameters, body and response types, and framework-neutral validation
// rules.
type Operation struct {
	ID            string       `json:"operationId"`
	MethodName    string       `json:"methodName"`
	HTTPMethod    string       `json:"httpMethod"`
	Path          string       `json:"path"`
	RouteName     string       `json:"routeName"`
	Summary       string       `json:"summary,omitempty"`
	Description   string       `json:"description,omitempty"`
	Deprecated    bool         `json:"deprecated,omitempty"`
	PathParams    []Param      `json:"pathParams,omitempty"`
	QueryParams   []Param      `json:"queryParams,omitempty"`
	HeaderParams  []Param      `json:"headerParams,omitempty"`
	CookieParams  []Param      `json:"cookieParams,omitempty"`
	Body          *Body        `json:"body,omitempty"`
	Responses     []Response   `json:"responses,omitempty"`
	SuccessStatus int          `json:"successStatus"`
	Rules         []FieldRules `json:"rules,omitempty"`
}

// Param is a typed path/query/header/cookie argument.
type Param struct {
	Name        string       `json:"name"`
	VarName     string       `json:"varName"`
	Type        TypeRef      `json:"type"`
	Required    bool         `json:"required"`
	Description string       `json:"description,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// Body describes the request payload. ClassName is set when the payload maps
// to a generated DTO.
type Body struct {
	ClassName   string  `json:"className,omitempty"`
	Type        TypeRef `json:"type"`
	Required    bool    `json:"required"`
	Description string  `json:"description,omitempty"`
}

// Response pairs a status code with its payload type. Code is 0 for the
// "default" response.
type Response struct {
	Status      string  `json:"status"`
	Code        int     `json:"code"`
	Description string  `json:"description,omitempty"`
	Type        TypeRef `json:"type"`
	HasBody     bool    `json:"hasBody"`
}

// FieldRules collects the validation constraints for one body field, keyed by
// its dotted payload path ("owner.email", "tags.*").
type FieldRules struct {
	Field       string       `json:"field"`
	Constraints []Constraint `json:"constraints"`
}

// Constraint is a single framework-neutral validation rule. Framework
// template sets translate these into their native syntax (Laravel rule
// strings, Symfony constraint maps, plain rule arrays).
type Constraint struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Canonical constraint kinds emitted by the builder.
const (
	ConstraintRequired  = "required"
	ConstraintNullable  = "nullable"
	ConstraintType      = "type"
	ConstraintMin       = "min"
	ConstraintMax       = "max"
	ConstraintMinLength = "minLength"
	ConstraintMaxLength = "maxLength"
	ConstraintMinItems  = "minItems"
	ConstraintMaxItems  = "maxItems"
	ConstraintPattern   = "pattern"
	ConstraintEnum      = "enum"
	ConstraintFormat    = "format"
)

// ClassModel is a DTO emitted for a named component schema or a synthesised
// inline payload.
type ClassModel struct {
	Name        string     `json:"name"`
	SchemaName  string     `json:"schemaName,omitempty"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties"`
}

// Property is a single typed DTO member.
type Property struct {
	Name        string   `json:"name"`
	VarName     string   `json:"varName"`
	Type        TypeRef  `json:"type"`
	Required    bool     `json:"required"`
	Nullable    bool     `json:"nullable,omitempty"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}
