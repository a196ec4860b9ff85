package models

import "fmt"

type OrganizationOptions struct {
	ID                 string `json:"id" yaml:"id"`
	IntegrationID      string `json:"integration_id" yaml:"integration_id"`
	Name               string `json:"name" yaml:"name"`
	OrganizationNumber string `json:"organization_number" yaml:"organization_number"`
	Email              string `json:"email" yaml:"email"`
	WebSite            string `json:"web_site" yaml:"web_site"`
	CentralPhoneNumber string `json:"central_phone_number" yaml:"central_phone_number"`
}

// Organization is a company in the CRM. Relationship attributes are only reachable
// through their setters so they always hold a reference or nil.
type Organization struct {
	CustomFields
	Tagged

	ID                 string
	IntegrationID      string
	Name               string
	OrganizationNumber string
	Email              string
	WebSite            string
	CentralPhoneNumber string

	responsibleCoworker *CoworkerReference
	relation            Relation
}

func NewOrganization(opts OrganizationOptions) *Organization {
	return &Organization{
		ID:                 opts.ID,
		IntegrationID:      opts.IntegrationID,
		Name:               opts.Name,
		OrganizationNumber: opts.OrganizationNumber,
		Email:              opts.Email,
		WebSite:            opts.WebSite,
		CentralPhoneNumber: opts.CentralPhoneNumber,
	}
}

func init() {
	fields := stringFields("id", "integration_id", "name", "organization_number", "email",
		"web_site", "central_phone_number")
	fields = append(fields,
		Field{ID: "responsible_coworker", Type: FieldTypeCoworkerReference},
		Field{ID: "relation", Type: FieldTypeRelation},
		Field{ID: "custom_fields", Type: FieldTypeCustomFields},
		Field{ID: "tags", Type: FieldTypeTags},
	)
	MustRegisterSchema(Schema{Name: "Organization", Fields: fields}, &Organization{})
}

func (o *Organization) SerializeName() string { return "Organization" }

func (o *Organization) Attribute(id string) (any, bool) {
	switch id {
	case "id":
		return o.ID, true
	case "integration_id":
		return o.IntegrationID, true
	case "name":
		return o.Name, true
	case "organization_number":
		return o.OrganizationNumber, true
	case "email":
		return o.Email, true
	case "web_site":
		return o.WebSite, true
	case "central_phone_number":
		return o.CentralPhoneNumber, true
	case "responsible_coworker":
		return o.responsibleCoworker, true
	case "relation":
		return o.Relation(), true
	case "custom_fields":
		return o.CustomValues(), true
	case "tags":
		return o.Tags(), true
	}
	return nil, false
}

// SetResponsibleCoworker accepts a *Coworker, a *CoworkerReference or nil.
func (o *Organization) SetResponsibleCoworker(value any) error {
	ref, err := FromCoworker(value)
	if err != nil {
		return fmt.Errorf("set responsible_coworker: %w", err)
	}
	o.responsibleCoworker = ref
	return nil
}

func (o *Organization) ResponsibleCoworker() *CoworkerReference {
	return o.responsibleCoworker
}

// SetRelation rejects values outside Relations and keeps the previous value in that case.
func (o *Organization) SetRelation(r Relation) error {
	if err := Relations.Check(r); err != nil {
		return err
	}
	o.relation = r
	return nil
}

func (o *Organization) Relation() Relation {
	return Relations.Or(o.relation)
}

func (o *Organization) Reference() *OrganizationReference {
	ref, _ := FromOrganization(o)
	return ref
}

func (o *Organization) Validate() string {
	if o.Name == "" {
		return nameRequired("organization", o)
	}
	return ""
}

func (o *Organization) String() string {
	return fmt.Sprintf("organization[id=%s, integration_id=%s]", o.ID, o.IntegrationID)
}
