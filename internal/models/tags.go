package models

type Tag struct {
	Value string
}

// Tagged gives an entity an ordered, append-only list of labels. No dedup, empty labels
// are kept.
type Tagged struct {
	tags []Tag
}

func (t *Tagged) AddTag(label string) {
	t.tags = append(t.tags, Tag{Value: label})
}

func (t *Tagged) Tags() []Tag {
	out := make([]Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

// HasTag reports whether any tag carries label.
func (t *Tagged) HasTag(label string) bool {
	for _, tag := range t.tags {
		if tag.Value == label {
			return true
		}
	}
	return false
}
