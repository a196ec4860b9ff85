package models

import "fmt"

// Validator is implemented by every business entity. An empty result means valid.
type Validator interface {
	Validate() string
}

// Validate runs the entity's own checks. Entities without checks are always valid.
func Validate(e Entity) string {
	if v, ok := e.(Validator); ok {
		return v.Validate()
	}
	return ""
}

// nameRequired builds the failure message for a missing name, carrying the serialized
// entity so the message can be diagnosed without the source data at hand.
func nameRequired(kind string, e Entity) string {
	var serialized string
	if p, err := Serialize(e); err != nil {
		serialized = fmt.Sprintf("<%v>", err)
	} else {
		serialized = p.String()
	}
	return fmt.Sprintf("A name is required for %s.\n%s", kind, serialized)
}
