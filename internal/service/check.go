package service

import (
	"fmt"

	"github.com/friber/move-to-go/internal/models"
)

// ValidationReport is the validation outcome of one entity.
type ValidationReport struct {
	TypeName      string `json:"type_name"`
	IntegrationID string `json:"integration_id"`
	Valid         bool   `json:"valid"`
	Message       string `json:"message,omitempty"`
}

func ValidateAll(entities []models.Entity) []ValidationReport {
	reports := make([]ValidationReport, 0, len(entities))
	for _, e := range entities {
		msg := models.Validate(e)
		reports = append(reports, ValidationReport{
			TypeName:      e.SerializeName(),
			IntegrationID: IntegrationID(e),
			Valid:         msg == "",
			Message:       msg,
		})
	}
	return reports
}

// SerializeAll serializes every entity, stopping at the first failure.
func SerializeAll(entities []models.Entity) ([]*models.SchemaPayload, error) {
	payloads := make([]*models.SchemaPayload, 0, len(entities))
	for i, e := range entities {
		p, err := models.Serialize(e)
		if err != nil {
			return nil, fmt.Errorf("serialize entity #%d (%s): %w", i+1, e.SerializeName(), err)
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}
