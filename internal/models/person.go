package models

import "fmt"

type PersonOptions struct {
	ID                string `json:"id" yaml:"id"`
	IntegrationID     string `json:"integration_id" yaml:"integration_id"`
	FirstName         string `json:"first_name" yaml:"first_name"`
	LastName          string `json:"last_name" yaml:"last_name"`
	Position          string `json:"position" yaml:"position"`
	Email             string `json:"email" yaml:"email"`
	DirectPhoneNumber string `json:"direct_phone_number" yaml:"direct_phone_number"`
	MobilePhoneNumber string `json:"mobile_phone_number" yaml:"mobile_phone_number"`
}

// Person is a contact, usually employed by an organization.
type Person struct {
	CustomFields
	Tagged

	ID                string
	IntegrationID     string
	FirstName         string
	LastName          string
	Position          string
	Email             string
	DirectPhoneNumber string
	MobilePhoneNumber string

	organization *OrganizationReference
}

func NewPerson(opts PersonOptions) *Person {
	return &Person{
		ID:                opts.ID,
		IntegrationID:     opts.IntegrationID,
		FirstName:         opts.FirstName,
		LastName:          opts.LastName,
		Position:          opts.Position,
		Email:             opts.Email,
		DirectPhoneNumber: opts.DirectPhoneNumber,
		MobilePhoneNumber: opts.MobilePhoneNumber,
	}
}

func init() {
	fields := stringFields("id", "integration_id", "first_name", "last_name", "position", "email",
		"direct_phone_number", "mobile_phone_number")
	fields = append(fields,
		Field{ID: "organization", Type: FieldTypeOrganizationReference},
		Field{ID: "custom_fields", Type: FieldTypeCustomFields},
		Field{ID: "tags", Type: FieldTypeTags},
	)
	MustRegisterSchema(Schema{Name: "Person", Fields: fields}, &Person{})
}

func (p *Person) SerializeName() string { return "Person" }

func (p *Person) Attribute(id string) (any, bool) {
	switch id {
	case "id":
		return p.ID, true
	case "integration_id":
		return p.IntegrationID, true
	case "first_name":
		return p.FirstName, true
	case "last_name":
		return p.LastName, true
	case "position":
		return p.Position, true
	case "email":
		return p.Email, true
	case "direct_phone_number":
		return p.DirectPhoneNumber, true
	case "mobile_phone_number":
		return p.MobilePhoneNumber, true
	case "organization":
		return p.organization, true
	case "custom_fields":
		return p.CustomValues(), true
	case "tags":
		return p.Tags(), true
	}
	return nil, false
}

// SetOrganization accepts an *Organization, an *OrganizationReference or nil.
func (p *Person) SetOrganization(value any) error {
	ref, err := FromOrganization(value)
	if err != nil {
		return fmt.Errorf("set organization: %w", err)
	}
	p.organization = ref
	return nil
}

func (p *Person) Organization() *OrganizationReference {
	return p.organization
}

func (p *Person) FullName() string {
	return fullName(p.FirstName, p.LastName)
}

func (p *Person) Reference() *PersonReference {
	ref, _ := FromPerson(p)
	return ref
}

func (p *Person) Validate() string {
	if p.FullName() == "" {
		return nameRequired("person", p)
	}
	return ""
}

func (p *Person) String() string {
	return fmt.Sprintf("person[id=%s, integration_id=%s]", p.ID, p.IntegrationID)
}
