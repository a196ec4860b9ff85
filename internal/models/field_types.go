package models

import "fmt"

// FieldType is the wire type tag of a schema field.
type FieldType string

const (
	FieldTypeString                FieldType = "string"
	FieldTypeOrganizationReference FieldType = "organization_reference"
	FieldTypeCoworkerReference     FieldType = "coworker_reference"
	FieldTypePersonReference       FieldType = "person_reference"
	FieldTypeCustomFieldReference  FieldType = "custom_field_reference"
	FieldTypeCustomFields          FieldType = "custom_fields"
	FieldTypeTags                  FieldType = "tags"
	FieldTypeRelation              FieldType = "relation"
	FieldTypeDealStatus            FieldType = "deal_status"
)

// renderer turns the Go value of an attribute into its wire value.
type renderer func(value any) (any, error)

// renderer returns how values of this type are written to a payload.
// Unknown type tags have no renderer.
func (t FieldType) renderer() (renderer, bool) {
	switch t {
	case FieldTypeString:
		return renderString, true
	case FieldTypeOrganizationReference:
		return renderReference(KindOrganization), true
	case FieldTypeCoworkerReference:
		return renderReference(KindCoworker), true
	case FieldTypePersonReference:
		return renderReference(KindPerson), true
	case FieldTypeCustomFieldReference:
		return renderCustomFieldReference, true
	case FieldTypeCustomFields:
		return renderCustomFields, true
	case FieldTypeTags:
		return renderTags, true
	case FieldTypeRelation:
		return renderRelation, true
	case FieldTypeDealStatus:
		return renderDealStatus, true
	default:
		return nil, false
	}
}

// Known reports whether the type tag has a registered renderer.
func (t FieldType) Known() bool {
	_, ok := t.renderer()
	return ok
}

func renderString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	if s == "" {
		return nil, nil
	}
	return s, nil
}

func renderReference(kind EntityKind) renderer {
	return func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		ref, ok := value.(Reference)
		if !ok {
			return nil, fmt.Errorf("expected %s reference, got %T", kind, value)
		}
		if ref.Kind() != kind {
			return nil, fmt.Errorf("expected %s reference, got %s reference", kind, ref.Kind())
		}
		if ref.isNil() {
			return nil, nil
		}
		return Serialize(ref)
	}
}

func renderCustomFieldReference(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	ref, ok := value.(*CustomFieldReference)
	if !ok {
		return nil, fmt.Errorf("expected custom field reference, got %T", value)
	}
	if ref == nil {
		return nil, nil
	}
	return Serialize(ref)
}

func renderCustomFields(value any) (any, error) {
	values, ok := value.([]*CustomValue)
	if !ok {
		return nil, fmt.Errorf("expected custom values, got %T", value)
	}
	out := make([]*SchemaPayload, 0, len(values))
	for _, cv := range values {
		p, err := Serialize(cv)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func renderTags(value any) (any, error) {
	tags, ok := value.([]Tag)
	if !ok {
		return nil, fmt.Errorf("expected tags, got %T", value)
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Value)
	}
	return out, nil
}

func renderRelation(value any) (any, error) {
	r, ok := value.(Relation)
	if !ok {
		return nil, fmt.Errorf("expected relation, got %T", value)
	}
	return string(r), nil
}

func renderDealStatus(value any) (any, error) {
	s, ok := value.(DealStatus)
	if !ok {
		return nil, fmt.Errorf("expected deal status, got %T", value)
	}
	return string(s), nil
}
