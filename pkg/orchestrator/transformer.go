package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-stubgen/pkg/model"
)

// Transformer mutates a Stub after building but before generators run.
// Implementations can rename methods, inject metadata, or perform arbitrary
// rewrites.
type Transformer interface {
	Transform(ctx context.Context, stub *model.Stub) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, stub *model.Stub) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, stub *model.Stub) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, stub)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// The document shape supports stub-level metadata and per-operation patches,
// keyed by operation id:
//
//	{
//	  "namespace": "Acme\\PetStore",
//	  "metadata": {"owner": "platform-team"},
//	  "operations": {
//	    "createPet": {"methodName": "storePet", "summary": "Store a pet."}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Namespace  string                        `json:"namespace"`
	Metadata   map[string]string             `json:"metadata"`
	Operations map[string]jsonOperationPatch `json:"operations"`
}

type jsonOperationPatch struct {
	MethodName string `json:"methodName"`
	RouteName  string `json:"routeName"`
	Summary    string `json:"summary"`
	Deprecated *bool  `json:"deprecated"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied stub.
func (t *JSONPresetTransformer) Transform(ctx context.Context, stub *model.Stub) error {
	if stub == nil {
		return errors.New("json preset transformer: stub model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if namespace := strings.TrimSpace(t.document.Namespace); namespace != "" {
		stub.Namespace = namespace
	}
	if len(t.document.Metadata) > 0 {
		stub.Metadata = mergeStringMap(stub.Metadata, t.document.Metadata)
	}

	for id, patch := range t.document.Operations {
		if err := ctx.Err(); err != nil {
			return err
		}
		op := findOperationByID(stub, id)
		if op == nil {
			return fmt.Errorf("json preset transformer: operation %q not found", id)
		}
		applyOperationPatch(op, patch)
	}
	return nil
}

func applyOperationPatch(op *model.Operation, patch jsonOperationPatch) {
	if op == nil {
		return
	}
	if name := strings.TrimSpace(patch.MethodName); name != "" {
		op.MethodName = name
	}
	if name := strings.TrimSpace(patch.RouteName); name != "" {
		op.RouteName = name
	}
	if patch.Summary != "" {
		op.Summary = patch.Summary
	}
	if patch.Deprecated != nil {
		op.Deprecated = *patch.Deprecated
	}
}

func findOperationByID(stub *model.Stub, id string) *model.Operation {
	for ci := range stub.Controllers {
		controller := &stub.Controllers[ci]
		for oi := range controller.Operations {
			if controller.Operations[oi].ID == id {
				return &controller.Operations[oi]
			}
		}
	}
	return nil
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
