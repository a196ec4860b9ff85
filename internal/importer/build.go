package importer

import (
	"errors"
	"fmt"

	"github.com/friber/move-to-go/internal/helpers"
	"github.com/friber/move-to-go/internal/models"
)

// Result holds the entities built from a document.
type Result struct {
	Coworkers     []*models.Coworker
	Organizations []*models.Organization
	Persons       []*models.Person
	Deals         []*models.Deal
	// Warnings are problems the remote system may or may not accept, e.g. malformed emails.
	Warnings []string
}

// Entities lists everything in dependency order: coworkers, organizations, persons, deals.
func (r *Result) Entities() []models.Entity {
	out := make([]models.Entity, 0, len(r.Coworkers)+len(r.Organizations)+len(r.Persons)+len(r.Deals))
	for _, c := range r.Coworkers {
		out = append(out, c)
	}
	for _, o := range r.Organizations {
		out = append(out, o)
	}
	for _, p := range r.Persons {
		out = append(out, p)
	}
	for _, d := range r.Deals {
		out = append(out, d)
	}
	return out
}

type builder struct {
	result        *Result
	errs          []error
	coworkers     map[string]*models.Coworker
	organizations map[string]*models.Organization
	persons       map[string]*models.Person
}

// Build turns a document into entities. References are looked up by integration id among
// the document's own records and assigned as full entities, so the setters store them as
// references. All problems are reported together.
func Build(doc *Document) (*Result, error) {
	b := &builder{
		result:        &Result{},
		coworkers:     map[string]*models.Coworker{},
		organizations: map[string]*models.Organization{},
		persons:       map[string]*models.Person{},
	}

	for i, rec := range doc.Coworkers {
		c := models.NewCoworker(rec.CoworkerOptions)
		b.index("coworker", i, c.IntegrationID, func() bool {
			_, dup := b.coworkers[c.IntegrationID]
			b.coworkers[c.IntegrationID] = c
			return dup
		})
		b.checkEmail(c.String(), c.Email)
		b.result.Coworkers = append(b.result.Coworkers, c)
	}

	for i, rec := range doc.Organizations {
		o := models.NewOrganization(rec.OrganizationOptions)
		b.index("organization", i, o.IntegrationID, func() bool {
			_, dup := b.organizations[o.IntegrationID]
			b.organizations[o.IntegrationID] = o
			return dup
		})
		b.checkEmail(o.String(), o.Email)
		if rec.ResponsibleCoworker != "" {
			b.assign(o.String(), o.SetResponsibleCoworker, b.coworker(o.String(), rec.ResponsibleCoworker))
		}
		if rec.Relation != "" {
			if r, err := models.ParseRelation(rec.Relation); err != nil {
				b.fail(o.String(), err)
			} else if err := o.SetRelation(r); err != nil {
				b.fail(o.String(), err)
			}
		}
		attach(&o.Tagged, &o.CustomFields, rec.Tags, rec.CustomFields)
		b.result.Organizations = append(b.result.Organizations, o)
	}

	for i, rec := range doc.Persons {
		p := models.NewPerson(rec.PersonOptions)
		b.index("person", i, p.IntegrationID, func() bool {
			_, dup := b.persons[p.IntegrationID]
			b.persons[p.IntegrationID] = p
			return dup
		})
		b.checkEmail(p.String(), p.Email)
		if rec.Organization != "" {
			b.assign(p.String(), p.SetOrganization, b.organization(p.String(), rec.Organization))
		}
		attach(&p.Tagged, &p.CustomFields, rec.Tags, rec.CustomFields)
		b.result.Persons = append(b.result.Persons, p)
	}

	for _, rec := range doc.Deals {
		d := models.NewDeal(rec.DealOptions)
		if rec.Customer != "" {
			b.assign(d.String(), d.SetCustomer, b.organization(d.String(), rec.Customer))
		}
		if rec.ResponsibleCoworker != "" {
			b.assign(d.String(), d.SetResponsibleCoworker, b.coworker(d.String(), rec.ResponsibleCoworker))
		}
		if rec.CustomerContact != "" {
			b.assign(d.String(), d.SetCustomerContact, b.person(d.String(), rec.CustomerContact))
		}
		if rec.Status != "" {
			if s, err := models.MapDealStatus(rec.Status, doc.StatusMappings); err != nil {
				b.fail(d.String(), err)
			} else if err := d.SetStatus(s); err != nil {
				b.fail(d.String(), err)
			}
		}
		attach(&d.Tagged, &d.CustomFields, rec.Tags, rec.CustomFields)
		b.result.Deals = append(b.result.Deals, d)
	}

	if len(b.errs) > 0 {
		return b.result, errors.Join(b.errs...)
	}
	return b.result, nil
}

// Load reads, parses and builds an import file.
func Load(path string) (*Result, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

func (b *builder) fail(owner string, err error) {
	b.errs = append(b.errs, fmt.Errorf("%s: %w", owner, err))
}

func (b *builder) index(kind string, pos int, integrationID string, store func() bool) {
	if integrationID == "" {
		return
	}
	if store() {
		b.errs = append(b.errs, fmt.Errorf("%s #%d: duplicate integration_id %q", kind, pos+1, integrationID))
	}
}

func (b *builder) checkEmail(owner, email string) {
	if email != "" && !helpers.IsValidEmail(email) {
		b.result.Warnings = append(b.result.Warnings, fmt.Sprintf("%s: invalid email %q", owner, email))
	}
}

// assign calls a relationship setter when the target was found.
func (b *builder) assign(owner string, set func(any) error, target any) {
	if target == nil {
		return
	}
	if err := set(target); err != nil {
		b.fail(owner, err)
	}
}

func (b *builder) coworker(owner, integrationID string) any {
	if c, ok := b.coworkers[integrationID]; ok {
		return c
	}
	b.fail(owner, &UnknownReferenceError{Kind: models.KindCoworker, IntegrationID: integrationID})
	return nil
}

func (b *builder) organization(owner, integrationID string) any {
	if o, ok := b.organizations[integrationID]; ok {
		return o
	}
	b.fail(owner, &UnknownReferenceError{Kind: models.KindOrganization, IntegrationID: integrationID})
	return nil
}

func (b *builder) person(owner, integrationID string) any {
	if p, ok := b.persons[integrationID]; ok {
		return p
	}
	b.fail(owner, &UnknownReferenceError{Kind: models.KindPerson, IntegrationID: integrationID})
	return nil
}

func attach(tagged *models.Tagged, fields *models.CustomFields, tags []string, customFields []models.CustomField) {
	for _, tag := range tags {
		tagged.AddTag(tag)
	}
	for _, cf := range customFields {
		fields.AddCustomField(cf)
	}
}

// UnknownReferenceError is returned when a record points at an integration id that no
// record of the target kind carries.
type UnknownReferenceError struct {
	Kind          models.EntityKind
	IntegrationID string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.IntegrationID)
}
