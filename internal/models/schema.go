package models

import (
	"fmt"
	"sort"
	"sync"
)

// Entity is anything with a registered schema: the business entities, their references
// and the custom field values hanging off them.
type Entity interface {
	// SerializeName is the type tag the receiving side dispatches on, e.g. "Deal".
	SerializeName() string
	// Attribute returns the current value of a schema attribute. The bool is false for
	// ids the type does not define.
	Attribute(id string) (any, bool)
}

// Field is one entry of a schema declaration.
type Field struct {
	ID   string
	Type FieldType
}

// Schema is the ordered list of attributes of one entity type that take part in
// serialization.
type Schema struct {
	Name   string
	Fields []Field
}

var (
	schemasMu sync.RWMutex
	schemas   = map[string]Schema{}
)

// stringFields declares each id as a plain string field.
func stringFields(ids ...string) []Field {
	fields := make([]Field, 0, len(ids))
	for _, id := range ids {
		fields = append(fields, Field{ID: id, Type: FieldTypeString})
	}
	return fields
}

// RegisterSchema checks the declaration against a zero-valued probe of the entity type and
// stores it. Every type tag must be known, every id must be an attribute of the probe and
// the probe's zero values must render.
func RegisterSchema(schema Schema, probe Entity) error {
	if schema.Name == "" {
		return &SchemaError{Schema: "?", Reason: "empty name"}
	}
	if probe == nil {
		return &SchemaError{Schema: schema.Name, Reason: "no probe entity"}
	}
	if probe.SerializeName() != schema.Name {
		return &SchemaError{Schema: schema.Name, Reason: fmt.Sprintf("probe serializes as %s", probe.SerializeName())}
	}

	seen := make(map[string]struct{}, len(schema.Fields))
	for _, f := range schema.Fields {
		if _, dup := seen[f.ID]; dup {
			return &SchemaError{Schema: schema.Name, Field: f.ID, Reason: "declared twice"}
		}
		seen[f.ID] = struct{}{}

		render, ok := f.Type.renderer()
		if !ok {
			return &SchemaError{Schema: schema.Name, Field: f.ID, Reason: fmt.Sprintf("unknown field type %q", f.Type)}
		}
		value, ok := probe.Attribute(f.ID)
		if !ok {
			return &SchemaError{Schema: schema.Name, Field: f.ID, Reason: "not an attribute of the entity"}
		}
		if _, err := render(value); err != nil {
			return &SchemaError{Schema: schema.Name, Field: f.ID, Reason: err.Error()}
		}
	}

	schemasMu.Lock()
	defer schemasMu.Unlock()
	if _, exists := schemas[schema.Name]; exists {
		return &SchemaError{Schema: schema.Name, Reason: "already registered"}
	}
	fields := make([]Field, len(schema.Fields))
	copy(fields, schema.Fields)
	schemas[schema.Name] = Schema{Name: schema.Name, Fields: fields}
	return nil
}

// MustRegisterSchema is RegisterSchema for package initialization.
func MustRegisterSchema(schema Schema, probe Entity) {
	if err := RegisterSchema(schema, probe); err != nil {
		panic(err)
	}
}

// SchemaFor returns the registered schema of a type name.
func SchemaFor(name string) (Schema, bool) {
	schemasMu.RLock()
	defer schemasMu.RUnlock()
	s, ok := schemas[name]
	if !ok {
		return Schema{}, false
	}
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)
	return Schema{Name: s.Name, Fields: fields}, true
}

// SchemaNames lists the registered type names, sorted.
func SchemaNames() []string {
	schemasMu.RLock()
	defer schemasMu.RUnlock()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
