package models

type DealStatus string

const (
	DealStatusProspect    DealStatus = "Prospect"
	DealStatusQualified   DealStatus = "Qualified"
	DealStatusProposal    DealStatus = "Proposal"
	DealStatusNegotiation DealStatus = "Negotiation"
	DealStatusWon         DealStatus = "Won"
	DealStatusLost        DealStatus = "Lost"
)

var DealStatuses = NewEnumSet("status", DealStatusProspect,
	func(v DealStatus) error { return &InvalidDealStatusError{Value: v} },
	DealStatusProspect, DealStatusQualified, DealStatusProposal, DealStatusNegotiation, DealStatusWon, DealStatusLost,
)

func ParseDealStatus(s string) (DealStatus, error) {
	st := DealStatus(s)
	if err := DealStatuses.Check(st); err != nil {
		return "", err
	}
	return st, nil
}

// StatusMapping translates a status label of the source system into a DealStatus.
type StatusMapping struct {
	SourceStatus string `json:"source_status" yaml:"source_status"`
	DestStatus   string `json:"dest_status" yaml:"dest_status"`
}

// MapDealStatus applies the first mapping whose source matches, then parses the result.
// Unmapped values are parsed as they are.
func MapDealStatus(source string, mappings []StatusMapping) (DealStatus, error) {
	for _, m := range mappings {
		if m.SourceStatus == source {
			return ParseDealStatus(m.DestStatus)
		}
	}
	return ParseDealStatus(source)
}
