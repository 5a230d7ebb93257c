// Package openapi defines the public contracts for loading and parsing
// OpenAPI documents. The types here are deliberately decoupled from
// kin-openapi so downstream packages (stub model builder, generators) never
// depend on the parser implementation.
package openapi
