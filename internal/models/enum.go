package models

// EnumSet is a closed set of string constants with a designated default member.
type EnumSet[T ~string] struct {
	attribute string
	def       T
	members   []T
	invalid   func(T) error
}

// NewEnumSet builds a set; def must be one of members.
func NewEnumSet[T ~string](attribute string, def T, invalid func(T) error, members ...T) EnumSet[T] {
	s := EnumSet[T]{attribute: attribute, def: def, members: members, invalid: invalid}
	if !s.Contains(def) {
		panic("enum " + attribute + ": default " + string(def) + " is not a member")
	}
	return s
}

// Attribute is the name of the attribute the set constrains.
func (s EnumSet[T]) Attribute() string { return s.attribute }

func (s EnumSet[T]) Default() T { return s.def }

func (s EnumSet[T]) Contains(v T) bool {
	for _, m := range s.members {
		if m == v {
			return true
		}
	}
	return false
}

// Members returns the set in declaration order.
func (s EnumSet[T]) Members() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out
}

// Check returns the set's error for non-members.
func (s EnumSet[T]) Check(v T) error {
	if s.Contains(v) {
		return nil
	}
	return s.invalid(v)
}

// Or returns v, or the default when v is the zero value.
func (s EnumSet[T]) Or(v T) T {
	if v == "" {
		return s.def
	}
	return v
}
