package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SchemaPayload is the schema-annotated form of an entity. Fields keep the declaration
// order of the entity's schema.
type SchemaPayload struct {
	TypeName string         `json:"type_name"`
	Fields   []PayloadField `json:"fields"`
}

// PayloadField is one serialized attribute. Value is nil, a string, a []string, a
// *SchemaPayload or a []*SchemaPayload.
type PayloadField struct {
	ID    string    `json:"id"`
	Type  FieldType `json:"type"`
	Value any       `json:"value"`
}

// Serialize walks the registered schema of the entity and renders every declared attribute.
// Missing optional data renders as nil; only an unregistered entity type is an error.
func Serialize(e Entity) (*SchemaPayload, error) {
	if e == nil {
		return nil, fmt.Errorf("serialize: nil entity")
	}
	schema, ok := SchemaFor(e.SerializeName())
	if !ok {
		return nil, fmt.Errorf("serialize %s: %w", e.SerializeName(), ErrUnknownSchema)
	}

	payload := &SchemaPayload{
		TypeName: schema.Name,
		Fields:   make([]PayloadField, 0, len(schema.Fields)),
	}
	for _, f := range schema.Fields {
		render, _ := f.Type.renderer()
		raw, ok := e.Attribute(f.ID)
		if !ok {
			return nil, &SchemaError{Schema: schema.Name, Field: f.ID, Reason: "not an attribute of the entity"}
		}
		value, err := render(raw)
		if err != nil {
			return nil, &SchemaError{Schema: schema.Name, Field: f.ID, Reason: err.Error()}
		}
		payload.Fields = append(payload.Fields, PayloadField{ID: f.ID, Type: f.Type, Value: value})
	}
	return payload, nil
}

// Get returns the rendered value of a field.
func (p *SchemaPayload) Get(id string) (any, bool) {
	for _, f := range p.Fields {
		if f.ID == id {
			return f.Value, true
		}
	}
	return nil, false
}

// IDs returns the field ids in payload order.
func (p *SchemaPayload) IDs() []string {
	ids := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		ids = append(ids, f.ID)
	}
	return ids
}

// Object drops the type annotations and returns the payload as an ordered key/value list,
// with nested payloads converted the same way.
func (p *SchemaPayload) Object() OrderedObject {
	obj := make(OrderedObject, 0, len(p.Fields))
	for _, f := range p.Fields {
		obj = append(obj, KeyValue{Key: f.ID, Value: plain(f.Value)})
	}
	return obj
}

func plain(value any) any {
	switch v := value.(type) {
	case *SchemaPayload:
		return v.Object()
	case []*SchemaPayload:
		out := make([]OrderedObject, 0, len(v))
		for _, p := range v {
			out = append(out, p.Object())
		}
		return out
	default:
		return v
	}
}

// String renders the payload as its type name followed by the ordered JSON object.
func (p *SchemaPayload) String() string {
	data, err := json.Marshal(p.Object())
	if err != nil {
		return fmt.Sprintf("%s <unencodable: %v>", p.TypeName, err)
	}
	return p.TypeName + " " + string(data)
}

// KeyValue is one entry of an OrderedObject.
type KeyValue struct {
	Key   string
	Value any
}

// OrderedObject encodes as a JSON object whose keys keep slice order.
type OrderedObject []KeyValue

func (o OrderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
