package laravel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-stubgen/pkg/generators/rules"
	"github.com/goliatone/go-stubgen/pkg/model"
)

// controllerContext assembles the template data shared by the controller and
// api_interface templates. All conditionals are precomputed here so the
// mustache templates stay logic-light.
func controllerContext(controller model.Controller, namespace string) map[string]any {
	ops := make([]map[string]any, 0, len(controller.Operations))
	var formRequests []string
	usesBaseRequest := false

	for _, op := range controller.Operations {
		ops = append(ops, operationContext(op))
		if len(op.Rules) > 0 {
			formRequests = append(formRequests, formRequestClass(op))
		} else {
			usesBaseRequest = true
		}
	}

	return map[string]any{
		"namespace":       namespace,
		"tag":             controller.Tag,
		"className":       controller.ClassName,
		"interfaceName":   controller.InterfaceName,
		"operations":      ops,
		"formRequests":    formRequests,
		"usesBaseRequest": usesBaseRequest,
	}
}

func operationContext(op model.Operation) map[string]any {
	hasRules := len(op.Rules) > 0
	requestClass := "Request"
	if hasRules {
		requestClass = formRequestClass(op)
	}

	signature := []string{requestClass + " $request"}
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
		if hasRules {
			callArgs = append(callArgs, "$request->validated()")
		} else {
			callArgs = append(callArgs, "$request->all()")
		}
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
		"requestClass":       requestClass,
		"signature":          strings.Join(signature, ", "),
		"interfaceSignature": strings.Join(ifaceParts, ", "),
		"callArgs":           strings.Join(callArgs, ", "),
		"params":             params,
		"queryFetches":       queryFetches,
		"successStatus":      op.SuccessStatus,
		"routeMethod":        strings.ToLower(op.HTTPMethod),
		"routePath":          op.Path,
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

func formRequestContext(op model.Operation, namespace string) map[string]any {
	ruleEntries := make([]map[string]any, 0, len(op.Rules))
	for _, fieldRules := range op.Rules {
		ruleEntries = append(ruleEntries, map[string]any{
			"field": fieldRules.Field,
			"pipe":  rules.Pipe(fieldRules.Constraints),
		})
	}

	return map[string]any{
		"namespace":   namespace,
		"className":   formRequestClass(op),
		"operationId": op.ID,
		"rules":       ruleEntries,
	}
}

func modelContext(class model.ClassModel, namespace string) map[string]any {
	props := make([]map[string]any, 0, len(class.Properties))
	for _, prop := range class.Properties {
		props = append(props, map[string]any{
			"name":          prop.Name,
			"varName":       prop.VarName,
			"hint":          prop.Type.Hint,
			"doc":           prop.Type.Doc,
			"defaultSuffix": defaultSuffix(prop),
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

func routesContext(stub model.Stub, namespace string) map[string]any {
	controllers := make([]map[string]any, 0, len(stub.Controllers))
	for _, controller := range stub.Controllers {
		ops := make([]map[string]any, 0, len(controller.Operations))
		for _, op := range controller.Operations {
			ops = append(ops, map[string]any{
				"routeMethod": strings.ToLower(op.HTTPMethod),
				"routePath":   op.Path,
				"methodName":  op.MethodName,
				"routeName":   op.RouteName,
			})
		}
		controllers = append(controllers, map[string]any{
			"className":  controller.ClassName,
			"operations": ops,
		})
	}

	return map[string]any{
		"namespace":   namespace,
		"title":       stub.Title,
		"version":     stub.Version,
		"controllers": controllers,
	}
}

// formRequestClass names the per-operation FormRequest. The suffix avoids
// collisions with DTO classes synthesised for inline request bodies.
func formRequestClass(op model.Operation) string {
	return upperFirst(op.MethodName) + "FormRequest"
}

func upperFirst(input string) string {
	if input == "" {
		return input
	}
	return strings.ToUpper(input[:1]) + input[1:]
}

func defaultSuffix(prop model.Property) string {
	if prop.Default != nil {
		switch v := prop.Default.(type) {
		case string:
			return " = '" + strings.ReplaceAll(v, "'", "\\'") + "'"
		case bool:
			return " = " + strconv.FormatBool(v)
		case float64:
			return " = " + strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return " = " + strconv.Itoa(v)
		default:
			return fmt.Sprintf(" = %v", v)
		}
	}
	switch {
	case strings.HasPrefix(prop.Type.Hint, "?"), prop.Type.Hint == "mixed":
		return " = null"
	case prop.Type.Hint == "array":
		return " = []"
	default:
		return ""
	}
}
