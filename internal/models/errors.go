package models

import (
	"errors"
	"fmt"
)

// ErrUnknownSchema is returned by Serialize for entity types that never registered a schema.
var ErrUnknownSchema = errors.New("unknown schema")

// TypeMismatchError is returned when a relationship attribute is assigned a value that is
// neither nil, a reference of the expected kind nor an entity of the expected kind.
type TypeMismatchError struct {
	Expected EntityKind
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s or %s reference, got %s", e.Expected, e.Expected, e.Actual)
}

// InvalidRelationError is returned when a value outside Relations is assigned.
type InvalidRelationError struct {
	Value Relation
}

func (e *InvalidRelationError) Error() string {
	return fmt.Sprintf("invalid relation %q", string(e.Value))
}

// InvalidDealStatusError is returned when a value outside DealStatuses is assigned.
type InvalidDealStatusError struct {
	Value DealStatus
}

func (e *InvalidDealStatusError) Error() string {
	return fmt.Sprintf("invalid deal status %q", string(e.Value))
}

// SchemaError describes a broken schema declaration. It is raised while registering
// schemas, never while serializing data.
type SchemaError struct {
	Schema string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("schema %s: field %s: %s", e.Schema, e.Field, e.Reason)
}
