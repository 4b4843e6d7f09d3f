package errors

import (
	"errors"
)

// Major is the top level classification, i.e. 'Config' or 'Invocation'.
type Major uint8

// RegisterMajor adds a new top level classification named 'name'.
func RegisterMajor(name string, description ...string) (Major, error) {
	v, err := classes.register("major", maxMajorValue, name, description)
	if err != nil {
		return 0, err
	}
	return Major(v), nil
}

// MustRegisterMajor is RegisterMajor that panics on error.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

// Name of the registered major.
func (m Major) Name() string {
	e, _ := classes.entry(uint16(m))
	return e.name
}

// Description of the registered major.
func (m Major) Description() string {
	e, _ := classes.entry(uint16(m))
	return e.description
}

// InBounds reports whether the value fits into the major bits.
func (m Major) InBounds() bool {
	return uint32(m) <= maxMajorValue
}

// Minors lists the minors registered for the major.
func (m Major) Minors() []Minor {
	n := classes.count(uint16(m))
	minors := make([]Minor, n)
	for i := range minors {
		minors[i] = Minor{major: m, value: uint16(i + 1)}
	}
	return minors
}

// RegisterMinor adds a classification named 'name' under the major 'm'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.valid() {
		return Minor{}, errors.New("major out of bounds")
	}
	v, err := classes.register("minor", maxMinorValue, name, description, uint16(m))
	if err != nil {
		return Minor{}, err
	}
	return Minor{major: m, value: v}, nil
}

// MustRegisterMinor is RegisterMinor that panics on error.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

func (m Major) valid() bool {
	return m != 0 && m.InBounds()
}

// Minor divides a Major into subject areas, i.e. 'Include' within 'Config'.
type Minor struct {
	major Major
	value uint16
}

// Major the minor belongs to.
func (m Minor) Major() Major {
	return m.major
}

// Value is the minor number unique within its major.
func (m Minor) Value() uint16 {
	return m.value
}

// Name of the registered minor.
func (m Minor) Name() string {
	e, _ := classes.entry(uint16(m.major), m.value)
	return e.name
}

// Description of the registered minor.
func (m Minor) Description() string {
	e, _ := classes.entry(uint16(m.major), m.value)
	return e.description
}

// InBounds reports whether the value is non zero and fits into the minor bits.
func (m Minor) InBounds() bool {
	return m.value != 0 && uint32(m.value) <= maxMinorValue
}

// Valid reports whether both the minor and its major are in bounds.
func (m Minor) Valid() bool {
	return m.InBounds() && m.major.valid()
}

// Indexes lists the indexes registered for the minor.
func (m Minor) Indexes() []Index {
	n := classes.count(uint16(m.major), m.value)
	indexes := make([]Index, n)
	for i := range indexes {
		indexes[i] = Index{minor: m, value: uint16(i + 1)}
	}
	return indexes
}

// RegisterIndex adds a classification named 'name' under the minor 'm'.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.Valid() {
		return Index{}, errors.New("invalid minor provided")
	}
	v, err := classes.register("index", maxIndexValue, name, description, uint16(m.major), m.value)
	if err != nil {
		return Index{}, err
	}
	return Index{minor: m, value: v}, nil
}

// MustRegisterIndex is RegisterIndex that panics on error.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Index is the most precise classification, i.e. 'Depth Exceeded' within 'Config' 'Include'.
type Index struct {
	minor Minor
	value uint16
}

// Class composes the full classification of the index.
// Returns zero Class if the index is not valid.
func (i Index) Class() Class {
	if !i.Valid() {
		return Class(0)
	}
	return compose(i.minor.major, i.minor.value, i.value)
}

// Minor the index belongs to.
func (i Index) Minor() Minor {
	return i.minor
}

// Value is the index number unique within its minor.
func (i Index) Value() uint16 {
	return i.value
}

// Name of the registered index.
func (i Index) Name() string {
	e, _ := classes.entry(uint16(i.minor.major), i.minor.value, i.value)
	return e.name
}

// Description of the registered index.
func (i Index) Description() string {
	e, _ := classes.entry(uint16(i.minor.major), i.minor.value, i.value)
	return e.description
}

// InBounds reports whether the value fits into the index bits.
func (i Index) InBounds() bool {
	return uint32(i.value) <= maxIndexValue
}

// Valid reports whether the index and its minor are in bounds.
func (i Index) Valid() bool {
	return i.value != 0 && i.InBounds() && i.minor.Valid()
}
