// Command generate-stub-model serializes the stub model built from an OpenAPI
// document. Useful for inspecting what the builder produces for a given schema
// before pointing a generator at it; pass -output to write the JSON to a file
// instead of stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	stubgen "github.com/goliatone/go-stubgen"
	"github.com/goliatone/go-stubgen/pkg/model"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

func main() {
	var (
		schemaPath = flag.String("schema", "examples/fixtures/petstore.json", "OpenAPI document path")
		outputPath = flag.String("output", "-", "output path for the serialized stub model, '-' for stdout")
		namespace  = flag.String("namespace", "App", "root PHP namespace")
	)
	flag.Parse()

	ctx := context.Background()

	data, err := os.ReadFile(*schemaPath)
	if err != nil {
		fatalf("read schema: %v", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(*schemaPath), data)
	if err != nil {
		fatalf("new document: %v", err)
	}

	parser := stubgen.NewParser()
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		fatalf("parse operations: %v", err)
	}

	builder := model.NewBuilder(model.WithNamespace(*namespace))
	stub, err := builder.Build(operations)
	if err != nil {
		fatalf("build stub model: %v", err)
	}

	payload, err := json.MarshalIndent(stub, "", "  ")
	if err != nil {
		fatalf("marshal stub model: %v", err)
	}
	payload = append(payload, '\n')

	if *outputPath == "-" {
		if _, err := os.Stdout.Write(payload); err != nil {
			fatalf("write stdout: %v", err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fatalf("mkdir output: %v", err)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fatalf("write output: %v", err)
	}
	fmt.Printf("stub model written to %s\n", *outputPath)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
