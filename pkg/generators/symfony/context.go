package symfony

import (
	"strings"

	"github.com/goliatone/go-stubgen/pkg/generators/rules"
	"github.com/goliatone/go-stubgen/pkg/model"
)

func controllerContext(controller model.Controller, namespace string) map[string]any {
	ops := make([]map[string]any, 0, len(controller.Operations))
	for _, op := range controller.Operations {
		ops = append(ops, operationContext(op))
	}

	return map[string]any{
		"namespace":     namespace,
		"tag":           controller.Tag,
		"className":     controller.ClassName,
		"interfaceName": controller.InterfaceName,
		"operations":    ops,
	}
}

func operationContext(op model.Operation) map[string]any {
	signature := []string{"Request $request"}
	var ifaceParts, callArgs []string
	var params []map[string]any

	for _, p := range op.PathParams {
		signature = append(signature, p.Type.Hint+" $"+p.VarName)
		ifaceParts = append(ifaceParts, p.Type.Hint+" $"+p.VarName)
		callArgs = append(callArgs, "$"+p.VarName)
		params = append(params, paramDoc(p.Type.Doc, p.VarName, p.Description))
	}

	if op.Body != nil {
		ifaceParts = append(ifaceParts, "array $body")
		callArgs = append(callArgs, "$payload")
		params = append(params, paramDoc("array<string,mixed>", "body", op.Body.Description))
	}

	var queryFetches []map[string]any
	for _, p := range op.QueryParams {
		queryFetches = append(queryFetches, map[string]any{"varName": p.VarName, "name": p.Name})
		ifaceParts = append(ifaceParts, "mixed $"+p.VarName+" = null")
		callArgs = append(callArgs, "$"+p.VarName)
		params = append(params, paramDoc(p.Type.Doc+"|null", p.VarName, p.Description))
	}

	return map[string]any{
		"operationId":        op.ID,
		"methodName":         op.MethodName,
		"httpMethod":         op.HTTPMethod,
		"path":               op.Path,
		"summary":            op.Summary,
		"hasSummary":         op.Summary != "",
		"deprecated":         op.Deprecated,
		"hasBody":            op.Body != nil,
		"signature":          strings.Join(signature, ", "),
		"interfaceSignature": strings.Join(ifaceParts, ", "),
		"callArgs":           strings.Join(callArgs, ", "),
		"params":             params,
		"queryFetches":       queryFetches,
		"successStatus":      op.SuccessStatus,
		"routeName":          op.RouteName,
	}
}

func paramDoc(doc, varName, description string) map[string]any {
	return map[string]any{
		"doc":            doc,
		"varName":        varName,
		"description":    description,
		"hasDescription": description != "",
	}
}

func validatorContext(op model.Operation, namespace string) map[string]any {
	entries := make([]map[string]any, 0, len(op.Rules))
	for _, fieldRules := range op.Rules {
		entries = append(entries, map[string]any{
			"field":       fieldRules.Field,
			"constraints": strings.Join(rules.Symfony(fieldRules.Constraints), ", "),
		})
	}

	return map[string]any{
		"namespace":   namespace,
		"className":   validatorClass(op),
		"operationId": op.ID,
		"rules":       entries,
	}
}

func dtoContext(class model.ClassModel, namespace string) map[string]any {
	props := make([]map[string]any, 0, len(class.Properties))
	for _, prop := range class.Properties {
		hint := prop.Type.Hint
		suffix := ""
		switch {
		case strings.HasPrefix(hint, "?"), hint == "mixed":
			suffix = " = null"
		case hint == "array":
			suffix = " = []"
		}
		props = append(props, map[string]any{
			"name":          prop.Name,
			"varName":       prop.VarName,
			"hint":          hint,
			"doc":           prop.Type.Doc,
			"defaultSuffix": suffix,
		})
	}

	return map[string]any{
		"namespace":      namespace,
		"className":      class.Name,
		"description":    class.Description,
		"hasDescription": class.Description != "",
		"properties":     props,
	}
}

func validatorClass(op model.Operation) string {
	name := op.MethodName
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name + "Validator"
}
