package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	php "github.com/goliatone/go-stubgen/internal/php"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

const (
	defaultNamespace = "App"
	defaultTag       = "Default"
)

// Options tunes how operations map onto the stub model.
type Options struct {
	// Namespace is the root PHP namespace for generated classes. Defaults to
	// "App".
	Namespace string

	// DefaultTag names the controller group for untagged operations.
	DefaultTag string
}

func defaultOptions() Options {
	return Options{
		Namespace:  defaultNamespace,
		DefaultTag: defaultTag,
	}
}

// Builder converts parsed OpenAPI operations into a Stub.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if strings.TrimSpace(options.Namespace) != "" {
		opts.Namespace = strings.TrimSpace(options.Namespace)
	}
	if strings.TrimSpace(options.DefaultTag) != "" {
		opts.DefaultTag = strings.TrimSpace(options.DefaultTag)
	}
	return &Builder{opts: opts}
}

// Build groups operations by primary tag, derives one controller and API
// interface per group, registers DTO classes for every object payload, and
// maps schema constraints into framework-neutral validation rules. Output
// ordering is deterministic: tags, operations, models, and properties are all
// sorted.
func (b *Builder) Build(operations map[string]pkgopenapi.Operation) (Stub, error) {
	if len(operations) == 0 {
		return Stub{}, fmt.Errorf("model builder: no operations to build")
	}

	stub := Stub{Namespace: b.opts.Namespace}
	classes := newClassRegistry(b.opts.Namespace)

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groups := make(map[string][]string)
	for _, id := range ids {
		tag := operations[id].PrimaryTag()
		if tag == "" {
			tag = b.opts.DefaultTag
		}
		groups[tag] = append(groups[tag], id)
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	controllerNames := php.NewDeduper()
	for _, tag := range tags {
		base := php.ClassName(tag)
		if base == "" {
			base = defaultTag
		}
		base = controllerNames.Claim(base)

		controller := Controller{
			Tag:           tag,
			ClassName:     base + "Controller",
			InterfaceName: base + "ApiInterface",
		}

		methodNames := php.NewDeduper()
		for _, id := range groups[tag] {
			op, err := b.buildOperation(operations[id], methodNames, classes)
			if err != nil {
				return Stub{}, err
			}
			controller.Operations = append(controller.Operations, op)
		}

		stub.Controllers = append(stub.Controllers, controller)
	}

	stub.Models = classes.sorted()
	return stub, nil
}

func (b *Builder) buildOperation(src pkgopenapi.Operation, methodNames *php.Deduper, classes *classRegistry) (Operation, error) {
	methodName := php.CamelCase(src.ID)
	if methodName == "" {
		methodName = php.CamelCase(strings.ToLower(src.Method) + " " + src.Path)
	}
	methodName = methodNames.Claim(methodName)

	op := Operation{
		ID:          src.ID,
		MethodName:  methodName,
		HTTPMethod:  strings.ToUpper(src.Method),
		Path:        src.Path,
		RouteName:   php.SnakeCase(src.ID),
		Summary:     php.SanitizeDescription(src.Summary),
		Description: php.SanitizeDescription(src.Description),
		Deprecated:  src.Deprecated,
	}

	for _, param := range src.Parameters {
		built := Param{
			Name:        param.Name,
			VarName:     php.CamelCase(param.Name),
			Type:        paramType(param.Schema),
			Required:    param.Required,
			Description: php.SanitizeDescription(param.Description),
			Constraints: constraintsForSchema(param.Schema, param.Required),
		}
		switch param.In {
		case pkgopenapi.ParameterInPath:
			op.PathParams = append(op.PathParams, built)
		case pkgopenapi.ParameterInQuery:
			op.QueryParams = append(op.QueryParams, built)
		case pkgopenapi.ParameterInHeader:
			op.HeaderParams = append(op.HeaderParams, built)
		case pkgopenapi.ParameterInCookie:
			op.CookieParams = append(op.CookieParams, built)
		}
	}

	if src.HasBody {
		body, err := b.buildBody(src, classes)
		if err != nil {
			return Operation{}, err
		}
		op.Body = body
		if body != nil {
			op.Rules = rulesForBody(src.RequestBody)
		}
	}

	responses, success, err := b.buildResponses(src, classes)
	if err != nil {
		return Operation{}, err
	}
	op.Responses = responses
	op.SuccessStatus = success

	return op, nil
}

func (b *Builder) buildBody(src pkgopenapi.Operation, classes *classRegistry) (*Body, error) {
	schema := src.RequestBody
	if schema.Type == "" && schema.Ref == "" && len(schema.Properties) == 0 && schema.Items == nil {
		return nil, nil
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("model builder: operation %q request body: %w", src.ID, err)
	}

	ref, className, err := classes.resolve(schema, php.ClassName(src.ID)+"Request")
	if err != nil {
		return nil, fmt.Errorf("model builder: operation %q: %w", src.ID, err)
	}

	return &Body{
		ClassName:   className,
		Type:        ref,
		Required:    true,
		Description: php.SanitizeDescription(schema.Description),
	}, nil
}

func (b *Builder) buildResponses(src pkgopenapi.Operation, classes *classRegistry) ([]Response, int, error) {
	statuses := make([]string, 0, len(src.Responses))
	for status := range src.Responses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		// "default" sorts after concrete codes.
		ci, ei := strconv.Atoi(statuses[i])
		cj, ej := strconv.Atoi(statuses[j])
		if ei != nil {
			return false
		}
		if ej != nil {
			return true
		}
		return ci < cj
	})

	var out []Response
	success := 0
	for _, status := range statuses {
		schema := src.Responses[status]
		code, err := strconv.Atoi(status)
		if err != nil {
			code = 0
		}

		resp := Response{
			Status:      status,
			Code:        code,
			Description: php.SanitizeDescription(schema.Description),
		}
		synthesised := php.ClassName(src.ID) + responseSuffix(status)
		ref, _, err := classes.resolve(schema, synthesised)
		switch {
		case err == nil:
			resp.Type = ref
			resp.HasBody = true
		case errors.Is(err, errNoType):
			// A response without a payload schema stays body-less.
		default:
			return nil, 0, fmt.Errorf("model builder: operation %q response %s: %w", src.ID, status, err)
		}
		out = append(out, resp)

		if success == 0 && code >= 200 && code < 300 {
			success = code
		}
	}
	if success == 0 {
		success = 200
	}
	return out, success, nil
}

func responseSuffix(status string) string {
	if status == "default" {
		return "DefaultResponse"
	}
	return status + "Response"
}

func paramType(schema pkgopenapi.Schema) TypeRef {
	if schema.Type == "array" && schema.Items != nil {
		return php.ArrayOf(php.ScalarType(schema.Items.Type, schema.Items.Format))
	}
	ref := php.ScalarType(schema.Type, schema.Format)
	if schema.Nullable {
		ref = php.Nullable(ref)
	}
	return ref
}
