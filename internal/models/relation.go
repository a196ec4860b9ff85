package models

// Relation describes how an organization relates to the company running the import.
type Relation string

const (
	NoRelation      Relation = "NoRelation"
	WorkingOnIt     Relation = "WorkingOnIt"
	IsACustomer     Relation = "IsACustomer"
	WasACustomer    Relation = "WasACustomer"
	BeenInTouch     Relation = "BeenInTouch"
	CouldBeCustomer Relation = "CouldBeCustomer"
)

// Relations is the closed set of relation values; NoRelation is the default.
var Relations = NewEnumSet("relation", NoRelation,
	func(v Relation) error { return &InvalidRelationError{Value: v} },
	NoRelation, WorkingOnIt, IsACustomer, WasACustomer, BeenInTouch, CouldBeCustomer,
)

// ParseRelation converts a raw string into a Relation.
func ParseRelation(s string) (Relation, error) {
	r := Relation(s)
	if err := Relations.Check(r); err != nil {
		return "", err
	}
	return r, nil
}
