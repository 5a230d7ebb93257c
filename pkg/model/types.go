package model

import internalmodel "github.com/goliatone/go-stubgen/internal/model"

// Stub re-exports the internal stub model consumed by generators.
type Stub = internalmodel.Stub

type Controller = internalmodel.Controller
type Operation = internalmodel.Operation
type Param = internalmodel.Param
type Body = internalmodel.Body
type Response = internalmodel.Response
type ClassModel = internalmodel.ClassModel
type Property = internalmodel.Property
type TypeRef = internalmodel.TypeRef
type FieldRules = internalmodel.FieldRules
type Constraint = internalmodel.Constraint

// Canonical constraint kinds. Framework template sets switch on these when
// translating rules into native validator syntax.
const (
	ConstraintRequired  = internalmodel.ConstraintRequired
	ConstraintNullable  = internalmodel.ConstraintNullable
	ConstraintType      = internalmodel.ConstraintType
	ConstraintMin       = internalmodel.ConstraintMin
	ConstraintMax       = internalmodel.ConstraintMax
	ConstraintMinLength = internalmodel.ConstraintMinLength
	ConstraintMaxLength = internalmodel.ConstraintMaxLength
	ConstraintMinItems  = internalmodel.ConstraintMinItems
	ConstraintMaxItems  = internalmodel.ConstraintMaxItems
	ConstraintPattern   = internalmodel.ConstraintPattern
	ConstraintEnum      = internalmodel.ConstraintEnum
	ConstraintFormat    = internalmodel.ConstraintFormat
)
