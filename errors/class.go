package errors

import (
	"errors"
	"strings"
)

// Bit layout of the Class: 7 bits of major, 10 of minor and 15 of index.
const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	majorShift = minorBitSize + indexBitSize
	minorShift = indexBitSize

	maxMajorValue = 1<<majorBitSize - 1
	maxMinorValue = 1<<minorBitSize - 1
	maxIndexValue = 1<<indexBitSize - 1
)

// Class is a 32 bit error classification composed of the Major, Minor and Index values.
// A class with zero index is the classification of a whole minor.
type Class uint32

// ClassError is an error carrying a Class.
type ClassError interface {
	error
	Class() Class
}

// NewClass composes the class of the registered 'index'.
func NewClass(index Index) (Class, error) {
	if !index.Valid() {
		return 0, errors.New("invalid index classification")
	}
	return index.Class(), nil
}

// NewMinorClass composes the class that matches the whole 'minor'.
func NewMinorClass(minor Minor) (Class, error) {
	if !minor.Valid() {
		return 0, errors.New("invalid minor classification")
	}
	return compose(minor.major, minor.value, 0), nil
}

// MustNewMinorClass is NewMinorClass that panics on error.
func MustNewMinorClass(minor Minor) Class {
	c, err := NewMinorClass(minor)
	if err != nil {
		panic(err)
	}
	return c
}

func compose(major Major, minor, index uint16) Class {
	return Class(uint32(major)<<majorShift | uint32(minor)<<minorShift | uint32(index))
}

// Major part of the class.
func (c Class) Major() Major {
	return Major(uint32(c) >> majorShift)
}

// Minor part of the class.
func (c Class) Minor() Minor {
	return Minor{major: c.Major(), value: uint16(uint32(c) >> minorShift & maxMinorValue)}
}

// Index part of the class.
func (c Class) Index() Index {
	return Index{minor: c.Minor(), value: uint16(uint32(c) & maxIndexValue)}
}

// IsMajor reports whether the class belongs to the major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// IsMinor reports whether the class belongs to the minor 'm'.
func (c Class) IsMinor(m Minor) bool {
	return c.Minor() == m
}

// MajorMinor drops the index part of the class.
func (c Class) MajorMinor() Class {
	return c &^ maxIndexValue
}

// String joins the registered names of the class parts, without spaces.
func (c Class) String() string {
	major := c.Major()
	if major == 0 {
		return "Unclassified"
	}
	var sb strings.Builder
	write := func(name string) {
		sb.WriteString(strings.ReplaceAll(name, " ", ""))
	}
	write(major.Name())
	if minor := c.Minor(); minor.value != 0 {
		write(minor.Name())
		if index := c.Index(); index.value != 0 {
			write(index.Name())
		}
	}
	return sb.String()
}
