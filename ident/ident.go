// Package ident provides Optional, a small value type for table ids that may
// be absent (a NULL column, a rate without a child smoothing, a root node
// without a parent).
//
// The zero value is None, so struct literals that omit an Optional field
// read as "no reference" without extra ceremony.
//
// Optional is comparable and safe to copy; it never allocates.
package ident

import "strconv"

// Optional is an id that is either present (Some) or absent (None).
type Optional struct {
	id    int
	valid bool
}

// None is the absent id.
var None = Optional{}

// Some returns a present id.
func Some(id int) Optional {
	return Optional{id: id, valid: true}
}

// FromPtr converts a nullable column value into an Optional.
func FromPtr(p *int64) Optional {
	if p == nil {
		return None
	}

	return Some(int(*p))
}

// Get returns the id and whether it is present.
// Complexity: O(1).
func (o Optional) Get() (int, bool) {
	return o.id, o.valid
}

// Valid reports whether the id is present.
func (o Optional) Valid() bool {
	return o.valid
}

// IsNone reports whether the id is absent.
func (o Optional) IsNone() bool {
	return !o.valid
}

// Or returns the id when present and def otherwise.
func (o Optional) Or(def int) int {
	if o.valid {
		return o.id
	}

	return def
}

// String renders the id, or "null" when absent.
func (o Optional) String() string {
	if !o.valid {
		return "null"
	}

	return strconv.Itoa(o.id)
}

// MarshalJSON encodes an absent id as null and a present one as a number.
func (o Optional) MarshalJSON() ([]byte, error) {
	return []byte(o.String()), nil
}

// MarshalYAML encodes an absent id as null and a present one as an integer.
func (o Optional) MarshalYAML() (interface{}, error) {
	if !o.valid {
		return nil, nil
	}

	return o.id, nil
}
