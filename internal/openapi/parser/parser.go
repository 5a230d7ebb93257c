package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId. Operations
// missing an operationId receive a synthesised "method:path" identifier so
// every reachable route can still be generated.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if err := p.resolveReferences(ctx, spec); err != nil {
		return nil, err
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			pathParams := item.Parameters
			p.collectOperation(ctx, operations, "GET", path, item.Get, pathParams)
			p.collectOperation(ctx, operations, "PUT", path, item.Put, pathParams)
			p.collectOperation(ctx, operations, "POST", path, item.Post, pathParams)
			p.collectOperation(ctx, operations, "DELETE", path, item.Delete, pathParams)
			p.collectOperation(ctx, operations, "PATCH", path, item.Patch, pathParams)
			p.collectOperation(ctx, operations, "HEAD", path, item.Head, pathParams)
			p.collectOperation(ctx, operations, "OPTIONS", path, item.Options, pathParams)
			p.collectOperation(ctx, operations, "TRACE", path, item.Trace, pathParams)
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	return operations, nil
}

// Info extracts the document-level metadata without walking paths.
func (p *Parser) Info(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Info, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Info{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgopenapi.Info{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return pkgopenapi.Info{}, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if spec.Info == nil {
		return pkgopenapi.Info{}, nil
	}
	return pkgopenapi.Info{
		Title:       spec.Info.Title,
		Version:     spec.Info.Version,
		Description: spec.Info.Description,
	}, nil
}

func (p *Parser) resolveReferences(ctx context.Context, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation, inherited openapi3.Parameters) {
	if ctx.Err() != nil {
		return
	}
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}
	requestSchema, hasBody := p.extractRequestSchema(operation.RequestBody)
	responseSchemas := p.extractResponseSchemas(operation.Responses)

	op, err := pkgopenapi.NewOperation(opID, method, path, requestSchema, responseSchemas)
	if err != nil {
		// Invalid operations are skipped but noted by leaving them out.
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Deprecated = operation.Deprecated
	op.HasBody = hasBody
	if len(operation.Tags) > 0 {
		op.Tags = append([]string(nil), operation.Tags...)
	}
	op.Parameters = extractParameters(inherited, operation.Parameters)
	op.Extensions = extractExtensions(operation.Extensions)
	target[opID] = op
}

func (p *Parser) extractRequestSchema(requestBody *openapi3.RequestBodyRef) (pkgopenapi.Schema, bool) {
	if requestBody == nil {
		return pkgopenapi.Schema{}, false
	}
	if requestBody.Value == nil {
		return pkgopenapi.Schema{Ref: requestBody.Ref}, true
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema), true
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema), true
	}
	return pkgopenapi.Schema{}, false
}

func (p *Parser) extractResponseSchemas(responses *openapi3.Responses) map[string]pkgopenapi.Schema {
	if responses == nil || responses.Len() == 0 {
		return nil
	}
	result := make(map[string]pkgopenapi.Schema)
	for status, ref := range responses.Map() {
		if ref == nil {
			continue
		}
		var schema pkgopenapi.Schema
		if ref.Value == nil {
			schema = pkgopenapi.Schema{Ref: ref.Ref}
		} else {
			content := ref.Value.Content
			if len(content) == 0 {
				continue
			}
			if mt, ok := content["application/json"]; ok {
				schema = convertSchema(mt.Schema)
			} else {
				for _, mt := range content {
					schema = convertSchema(mt.Schema)
					break
				}
			}
			if schema.Description == "" && ref.Value.Description != nil {
				schema.Description = *ref.Value.Description
			}
		}
		if schema.Ref == "" && schema.Type == "" && schema.Items == nil && len(schema.Properties) == 0 {
			continue
		}
		result[status] = schema
	}
	return result
}

func extractParameters(groups ...openapi3.Parameters) []pkgopenapi.Parameter {
	var result []pkgopenapi.Parameter
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, ref := range group {
			if ref == nil || ref.Value == nil {
				continue
			}
			src := ref.Value
			key := src.In + ":" + src.Name
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			param := pkgopenapi.Parameter{
				Name:        src.Name,
				In:          pkgopenapi.ParameterLocation(src.In),
				Required:    src.Required || src.In == "path",
				Description: src.Description,
				Schema:      convertSchema(src.Schema),
			}
			result = append(result, param)
		}
	}
	return result
}
