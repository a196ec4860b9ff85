package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/friber/move-to-go/internal/models"
)

// Document is the import file: one list per entity type, references given as the
// integration id of the target. JSON documents decode the same way.
type Document struct {
	Coworkers      []CoworkerRecord       `yaml:"coworkers" json:"coworkers"`
	Organizations  []OrganizationRecord   `yaml:"organizations" json:"organizations"`
	Persons        []PersonRecord         `yaml:"persons" json:"persons"`
	Deals          []DealRecord           `yaml:"deals" json:"deals"`
	StatusMappings []models.StatusMapping `yaml:"status_mappings" json:"status_mappings"`
}

type CoworkerRecord struct {
	models.CoworkerOptions `yaml:",inline"`
}

type OrganizationRecord struct {
	models.OrganizationOptions `yaml:",inline"`
	ResponsibleCoworker        string               `yaml:"responsible_coworker" json:"responsible_coworker"`
	Relation                   string               `yaml:"relation" json:"relation"`
	Tags                       []string             `yaml:"tags" json:"tags"`
	CustomFields               []models.CustomField `yaml:"custom_fields" json:"custom_fields"`
}

type PersonRecord struct {
	models.PersonOptions `yaml:",inline"`
	Organization         string               `yaml:"organization" json:"organization"`
	Tags                 []string             `yaml:"tags" json:"tags"`
	CustomFields         []models.CustomField `yaml:"custom_fields" json:"custom_fields"`
}

type DealRecord struct {
	models.DealOptions  `yaml:",inline"`
	Customer            string               `yaml:"customer" json:"customer"`
	ResponsibleCoworker string               `yaml:"responsible_coworker" json:"responsible_coworker"`
	CustomerContact     string               `yaml:"customer_contact" json:"customer_contact"`
	Status              string               `yaml:"status" json:"status"`
	Tags                []string             `yaml:"tags" json:"tags"`
	CustomFields        []models.CustomField `yaml:"custom_fields" json:"custom_fields"`
}

// Parse decodes a YAML or JSON document. Unknown keys are ignored.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid import document: %w", err)
	}
	return &doc, nil
}

func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return Parse(data)
}

// Size is the number of entity records in the document.
func (d *Document) Size() int {
	return len(d.Coworkers) + len(d.Organizations) + len(d.Persons) + len(d.Deals)
}
