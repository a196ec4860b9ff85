package models

import (
	"fmt"
	"strings"
)

// EntityKind names the targets a relationship attribute can point at.
type EntityKind string

const (
	KindOrganization EntityKind = "organization"
	KindCoworker     EntityKind = "coworker"
	KindPerson       EntityKind = "person"
)

// Reference is the minimal proxy stored in relationship attributes: integration id plus a
// display heading.
type Reference interface {
	Entity
	Kind() EntityKind
	isNil() bool
}

var referenceFields = stringFields("id", "integration_id", "heading")

func init() {
	MustRegisterSchema(Schema{Name: "OrganizationReference", Fields: referenceFields}, &OrganizationReference{})
	MustRegisterSchema(Schema{Name: "CoworkerReference", Fields: referenceFields}, &CoworkerReference{})
	MustRegisterSchema(Schema{Name: "PersonReference", Fields: referenceFields}, &PersonReference{})
}

func referenceAttribute(id, integrationID, heading, attr string) (any, bool) {
	switch attr {
	case "id":
		return id, true
	case "integration_id":
		return integrationID, true
	case "heading":
		return heading, true
	}
	return nil, false
}

type OrganizationReference struct {
	ID            string
	IntegrationID string
	Heading       string
}

func (r *OrganizationReference) SerializeName() string { return "OrganizationReference" }
func (r *OrganizationReference) Kind() EntityKind { return KindOrganization }
func (r *OrganizationReference) isNil() bool { return r == nil }

func (r *OrganizationReference) Attribute(id string) (any, bool) {
	return referenceAttribute(r.ID, r.IntegrationID, r.Heading, id)
}

func (r *OrganizationReference) String() string {
	return fmt.Sprintf("organization_reference[integration_id=%s, heading=%s]", r.IntegrationID, r.Heading)
}

type CoworkerReference struct {
	ID            string
	IntegrationID string
	Heading       string
}

func (r *CoworkerReference) SerializeName() string { return "CoworkerReference" }
func (r *CoworkerReference) Kind() EntityKind { return KindCoworker }
func (r *CoworkerReference) isNil() bool { return r == nil }

func (r *CoworkerReference) Attribute(id string) (any, bool) {
	return referenceAttribute(r.ID, r.IntegrationID, r.Heading, id)
}

func (r *CoworkerReference) String() string {
	return fmt.Sprintf("coworker_reference[integration_id=%s, heading=%s]", r.IntegrationID, r.Heading)
}

type PersonReference struct {
	ID            string
	IntegrationID string
	Heading       string
}

func (r *PersonReference) SerializeName() string { return "PersonReference" }
func (r *PersonReference) Kind() EntityKind { return KindPerson }
func (r *PersonReference) isNil() bool { return r == nil }

func (r *PersonReference) Attribute(id string) (any, bool) {
	return referenceAttribute(r.ID, r.IntegrationID, r.Heading, id)
}

func (r *PersonReference) String() string {
	return fmt.Sprintf("person_reference[integration_id=%s, heading=%s]", r.IntegrationID, r.Heading)
}

// FromOrganization normalizes an *Organization or *OrganizationReference into a reference.
// nil stays nil and references pass through unchanged.
func FromOrganization(value any) (*OrganizationReference, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *OrganizationReference:
		return v, nil
	case *Organization:
		if v == nil {
			return nil, nil
		}
		return &OrganizationReference{ID: v.ID, IntegrationID: v.IntegrationID, Heading: v.Name}, nil
	default:
		return nil, mismatch(KindOrganization, value)
	}
}

// FromCoworker normalizes a *Coworker or *CoworkerReference into a reference.
func FromCoworker(value any) (*CoworkerReference, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *CoworkerReference:
		return v, nil
	case *Coworker:
		if v == nil {
			return nil, nil
		}
		return &CoworkerReference{ID: v.ID, IntegrationID: v.IntegrationID, Heading: fullName(v.FirstName, v.LastName)}, nil
	default:
		return nil, mismatch(KindCoworker, value)
	}
}

// FromPerson normalizes a *Person or *PersonReference into a reference.
func FromPerson(value any) (*PersonReference, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *PersonReference:
		return v, nil
	case *Person:
		if v == nil {
			return nil, nil
		}
		return &PersonReference{ID: v.ID, IntegrationID: v.IntegrationID, Heading: fullName(v.FirstName, v.LastName)}, nil
	default:
		return nil, mismatch(KindPerson, value)
	}
}

// Normalize dispatches to the From* function of kind. The result is a nil interface when
// the input is absent.
func Normalize(value any, kind EntityKind) (Reference, error) {
	switch kind {
	case KindOrganization:
		ref, err := FromOrganization(value)
		if err != nil || ref == nil {
			return nil, err
		}
		return ref, nil
	case KindCoworker:
		ref, err := FromCoworker(value)
		if err != nil || ref == nil {
			return nil, err
		}
		return ref, nil
	case KindPerson:
		ref, err := FromPerson(value)
		if err != nil || ref == nil {
			return nil, err
		}
		return ref, nil
	default:
		return nil, fmt.Errorf("normalize: unknown entity kind %q", kind)
	}
}

func mismatch(expected EntityKind, value any) error {
	actual := fmt.Sprintf("%T", value)
	switch v := value.(type) {
	case Reference:
		actual = string(v.Kind()) + " reference"
	case *Organization:
		actual = string(KindOrganization)
	case *Coworker:
		actual = string(KindCoworker)
	case *Person:
		actual = string(KindPerson)
	}
	return &TypeMismatchError{Expected: expected, Actual: actual}
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
