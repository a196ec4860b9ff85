package models

import "fmt"

type CoworkerOptions struct {
	ID                string `json:"id" yaml:"id"`
	IntegrationID     string `json:"integration_id" yaml:"integration_id"`
	FirstName         string `json:"first_name" yaml:"first_name"`
	LastName          string `json:"last_name" yaml:"last_name"`
	Email             string `json:"email" yaml:"email"`
	DirectPhoneNumber string `json:"direct_phone_number" yaml:"direct_phone_number"`
	MobilePhoneNumber string `json:"mobile_phone_number" yaml:"mobile_phone_number"`
}

// Coworker is a user of the target CRM, e.g. the one responsible for a deal.
type Coworker struct {
	ID                string
	IntegrationID     string
	FirstName         string
	LastName          string
	Email             string
	DirectPhoneNumber string
	MobilePhoneNumber string
}

func NewCoworker(opts CoworkerOptions) *Coworker {
	return &Coworker{
		ID:                opts.ID,
		IntegrationID:     opts.IntegrationID,
		FirstName:         opts.FirstName,
		LastName:          opts.LastName,
		Email:             opts.Email,
		DirectPhoneNumber: opts.DirectPhoneNumber,
		MobilePhoneNumber: opts.MobilePhoneNumber,
	}
}

func init() {
	MustRegisterSchema(Schema{
		Name: "Coworker",
		Fields: stringFields("id", "integration_id", "first_name", "last_name", "email",
			"direct_phone_number", "mobile_phone_number"),
	}, &Coworker{})
}

func (c *Coworker) SerializeName() string { return "Coworker" }

func (c *Coworker) Attribute(id string) (any, bool) {
	switch id {
	case "id":
		return c.ID, true
	case "integration_id":
		return c.IntegrationID, true
	case "first_name":
		return c.FirstName, true
	case "last_name":
		return c.LastName, true
	case "email":
		return c.Email, true
	case "direct_phone_number":
		return c.DirectPhoneNumber, true
	case "mobile_phone_number":
		return c.MobilePhoneNumber, true
	}
	return nil, false
}

// FullName is the heading used when the coworker is referenced.
func (c *Coworker) FullName() string {
	return fullName(c.FirstName, c.LastName)
}

func (c *Coworker) Reference() *CoworkerReference {
	ref, _ := FromCoworker(c)
	return ref
}

func (c *Coworker) Validate() string {
	if c.FullName() == "" {
		return nameRequired("coworker", c)
	}
	return ""
}

func (c *Coworker) String() string {
	return fmt.Sprintf("coworker[id=%s, integration_id=%s]", c.ID, c.IntegrationID)
}
