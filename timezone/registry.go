package timezone

import (
	"fmt"

	"weather-app/models"
)

// Entry maps a timezone identifier to its UTC offset in whole hours.
// Offsets are kept in their textual form, so "0" and "+0" are different keys.
type Entry struct {
	Identifier string
	Offset     string
}

// Registry is an immutable, ordered set of timezone entries.
type Registry struct {
	entries  []Entry
	byID     map[string]string
	byOffset map[string]string
}

// Standard time only; daylight saving shifts are not modelled.
var defaultEntries = []Entry{
	{"America/Anchorage", "-9"},
	{"America/Los_Angeles", "-8"},
	{"America/Denver", "-7"},
	{"America/Chicago", "-6"},
	{"America/New_York", "-5"},
	{"America/Sao_Paulo", "-3"},
	{"Europe/London", "0"},
	{"Europe/Berlin", "+1"},
	{"Africa/Cairo", "+2"},
	{"Europe/Moscow", "+3"},
	{"Asia/Bangkok", "+7"},
	{"Asia/Singapore", "+8"},
	{"Asia/Tokyo", "+9"},
	{"Australia/Sydney", "+10"},
	{"Pacific/Auckland", "+12"},
}

// Default is the registry offered by the console.
var Default = MustNew(defaultEntries)

// New builds a registry. Identifiers must be unique; for duplicated offsets
// the first registered identifier wins the reverse lookup.
func New(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries:  make([]Entry, 0, len(entries)),
		byID:     make(map[string]string, len(entries)),
		byOffset: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		if e.Identifier == "" {
			return nil, fmt.Errorf("empty timezone identifier")
		}
		if !validOffset(e.Offset) {
			return nil, fmt.Errorf("%w: %q for %s", models.ErrInvalidOffset, e.Offset, e.Identifier)
		}
		if _, dup := r.byID[e.Identifier]; dup {
			return nil, fmt.Errorf("duplicate timezone identifier %s", e.Identifier)
		}
		r.byID[e.Identifier] = e.Offset
		if _, taken := r.byOffset[e.Offset]; !taken {
			r.byOffset[e.Offset] = e.Identifier
		}
		r.entries = append(r.entries, e)
	}

	return r, nil
}

// MustNew is New that panics on error.
func MustNew(entries []Entry) *Registry {
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// LookupOffset returns the offset registered for identifier.
func (r *Registry) LookupOffset(identifier string) (string, error) {
	offset, ok := r.byID[identifier]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidTimezone, identifier)
	}
	return offset, nil
}

// LookupIdentifier returns the first identifier registered with offset.
// The offset must match the registry's exact string form.
func (r *Registry) LookupIdentifier(offset string) (string, error) {
	id, ok := r.byOffset[offset]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidOffset, offset)
	}
	return id, nil
}

// Contains reports whether identifier is registered.
func (r *Registry) Contains(identifier string) bool {
	_, ok := r.byID[identifier]
	return ok
}

// Identifiers returns identifiers in registration order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.Identifier
	}
	return ids
}

// Entries returns a copy of the registered entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// validOffset matches [+-]?\d+.
func validOffset(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
