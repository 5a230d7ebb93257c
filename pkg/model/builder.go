package model

import (
	internalmodel "github.com/goliatone/go-stubgen/internal/model"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
)

// Builder converts parsed OpenAPI operations into a Stub.
type Builder interface {
	Build(operations map[string]pkgopenapi.Operation) (Stub, error)
}

// Option customises builder behaviour.
type Option func(*internalmodel.Options)

// WithNamespace overrides the root PHP namespace for generated classes.
func WithNamespace(namespace string) Option {
	return func(opts *internalmodel.Options) {
		opts.Namespace = namespace
	}
}

// WithDefaultTag names the controller group that collects untagged
// operations.
func WithDefaultTag(tag string) Option {
	return func(opts *internalmodel.Options) {
		opts.DefaultTag = tag
	}
}

// NewBuilder constructs the built-in stub builder.
func NewBuilder(options ...Option) Builder {
	var opts internalmodel.Options
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return internalmodel.New(opts)
}
