// Package model exposes the stub model: the framework-neutral representation
// of controllers, DTO classes, and validation rules that generators render
// into PHP source. The builder implementation lives under internal/model;
// this package re-exports the types and the construction seam.
package model
