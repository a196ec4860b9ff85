package models

import "fmt"

type DealOptions struct {
	ID            string `json:"id" yaml:"id"`
	IntegrationID string `json:"integration_id" yaml:"integration_id"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Probability   string `json:"probability" yaml:"probability"`
	Value         string `json:"value" yaml:"value"`
	OfferDate     string `json:"offer_date" yaml:"offer_date"`
	OrderDate     string `json:"order_date" yaml:"order_date"`
}

type Deal struct {
	CustomFields
	Tagged

	ID            string
	IntegrationID string
	Name          string
	Description   string
	Probability   string
	Value         string
	OfferDate     string
	OrderDate     string

	customer            *OrganizationReference
	responsibleCoworker *CoworkerReference
	customerContact     *PersonReference
	status              DealStatus
}

func NewDeal(opts DealOptions) *Deal {
	return &Deal{
		ID:            opts.ID,
		IntegrationID: opts.IntegrationID,
		Name:          opts.Name,
		Description:   opts.Description,
		Probability:   opts.Probability,
		Value:         opts.Value,
		OfferDate:     opts.OfferDate,
		OrderDate:     opts.OrderDate,
	}
}

func init() {
	fields := stringFields("id", "integration_id", "name", "description", "probability", "value",
		"offer_date", "order_date")
	fields = append(fields,
		Field{ID: "customer", Type: FieldTypeOrganizationReference},
		Field{ID: "responsible_coworker", Type: FieldTypeCoworkerReference},
		Field{ID: "customer_contact", Type: FieldTypePersonReference},
		Field{ID: "custom_fields", Type: FieldTypeCustomFields},
		Field{ID: "tags", Type: FieldTypeTags},
		Field{ID: "status", Type: FieldTypeDealStatus},
	)
	MustRegisterSchema(Schema{Name: "Deal", Fields: fields}, &Deal{})
}

func (d *Deal) SerializeName() string { return "Deal" }

func (d *Deal) Attribute(id string) (any, bool) {
	switch id {
	case "id":
		return d.ID, true
	case "integration_id":
		return d.IntegrationID, true
	case "name":
		return d.Name, true
	case "description":
		return d.Description, true
	case "probability":
		return d.Probability, true
	case "value":
		return d.Value, true
	case "offer_date":
		return d.OfferDate, true
	case "order_date":
		return d.OrderDate, true
	case "customer":
		return d.customer, true
	case "responsible_coworker":
		return d.responsibleCoworker, true
	case "customer_contact":
		return d.customerContact, true
	case "custom_fields":
		return d.CustomValues(), true
	case "tags":
		return d.Tags(), true
	case "status":
		return d.Status(), true
	}
	return nil, false
}

// SetCustomer accepts an *Organization, an *OrganizationReference or nil.
func (d *Deal) SetCustomer(value any) error {
	ref, err := FromOrganization(value)
	if err != nil {
		return fmt.Errorf("set customer: %w", err)
	}
	d.customer = ref
	return nil
}

func (d *Deal) Customer() *OrganizationReference { return d.customer }

// SetResponsibleCoworker accepts a *Coworker, a *CoworkerReference or nil.
func (d *Deal) SetResponsibleCoworker(value any) error {
	ref, err := FromCoworker(value)
	if err != nil {
		return fmt.Errorf("set responsible_coworker: %w", err)
	}
	d.responsibleCoworker = ref
	return nil
}

func (d *Deal) ResponsibleCoworker() *CoworkerReference { return d.responsibleCoworker }

// SetCustomerContact accepts a *Person, a *PersonReference or nil.
func (d *Deal) SetCustomerContact(value any) error {
	ref, err := FromPerson(value)
	if err != nil {
		return fmt.Errorf("set customer_contact: %w", err)
	}
	d.customerContact = ref
	return nil
}

func (d *Deal) CustomerContact() *PersonReference { return d.customerContact }

func (d *Deal) SetStatus(s DealStatus) error {
	if err := DealStatuses.Check(s); err != nil {
		return err
	}
	d.status = s
	return nil
}

func (d *Deal) Status() DealStatus {
	return DealStatuses.Or(d.status)
}

func (d *Deal) Validate() string {
	if d.Name == "" {
		return nameRequired("deal", d)
	}
	return ""
}

func (d *Deal) String() string {
	return fmt.Sprintf("deal[id=%s, integration_id=%s]", d.ID, d.IntegrationID)
}
