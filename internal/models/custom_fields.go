package models

import "fmt"

// CustomFieldReference identifies the custom field definition a value instantiates.
type CustomFieldReference struct {
	ID            string
	IntegrationID string
	Title         string
	Type          string
}

func (r *CustomFieldReference) SerializeName() string { return "CustomFieldReference" }

func (r *CustomFieldReference) Attribute(id string) (any, bool) {
	switch id {
	case "id":
		return r.ID, true
	case "integration_id":
		return r.IntegrationID, true
	case "title":
		return r.Title, true
	case "type":
		return r.Type, true
	}
	return nil, false
}

func (r *CustomFieldReference) String() string {
	return fmt.Sprintf("custom_field_reference[integration_id=%s, title=%s]", r.IntegrationID, r.Title)
}

// CustomValue is one value of a custom field on an entity. Field is nil for raw values.
type CustomValue struct {
	Field *CustomFieldReference
	Value string
}

func (v *CustomValue) SerializeName() string { return "CustomValue" }

func (v *CustomValue) Attribute(id string) (any, bool) {
	switch id {
	case "field":
		return v.Field, true
	case "value":
		return v.Value, true
	}
	return nil, false
}

// CustomField is the definition handed to AddCustomField: which field, and the value to store.
type CustomField struct {
	ID            string `json:"id" yaml:"id"`
	IntegrationID string `json:"integration_id" yaml:"integration_id"`
	Title         string `json:"title" yaml:"title"`
	Type          string `json:"type" yaml:"type"`
	Value         string `json:"value" yaml:"value"`
}

func init() {
	MustRegisterSchema(Schema{
		Name:   "CustomFieldReference",
		Fields: stringFields("id", "integration_id", "title", "type"),
	}, &CustomFieldReference{})
	MustRegisterSchema(Schema{
		Name: "CustomValue",
		Fields: []Field{
			{ID: "field", Type: FieldTypeCustomFieldReference},
			{ID: "value", Type: FieldTypeString},
		},
	}, &CustomValue{})
}

// CustomFields gives an entity an ordered, append-only list of custom values. Duplicate
// field definitions are kept as they are.
type CustomFields struct {
	customValues []*CustomValue
}

// AddCustomValue appends a value without a field reference.
func (c *CustomFields) AddCustomValue(value string) *CustomValue {
	cv := &CustomValue{Value: value}
	c.customValues = append(c.customValues, cv)
	return cv
}

// AddCustomField appends def.Value bound to a reference built from def and returns that
// reference. def is not validated.
func (c *CustomFields) AddCustomField(def CustomField) *CustomFieldReference {
	ref := &CustomFieldReference{
		ID:            def.ID,
		IntegrationID: def.IntegrationID,
		Title:         def.Title,
		Type:          def.Type,
	}
	c.AddCustomValue(def.Value).Field = ref
	return ref
}

// CustomValues returns the values in insertion order.
func (c *CustomFields) CustomValues() []*CustomValue {
	out := make([]*CustomValue, len(c.customValues))
	copy(out, c.customValues)
	return out
}
