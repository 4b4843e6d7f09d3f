package errors

import (
	"errors"
)

// IsClass checks if given error or any error it wraps is of given 'class'.
func IsClass(err error, class Class) bool {
	var classError ClassError
	for err != nil {
		if errors.As(err, &classError) {
			if classError.Class() == class {
				return true
			}
			err = errors.Unwrap(classError)
			continue
		}
		return false
	}
	return false
}

// IsMajor checks if given error or any error it wraps is classified with the major 'm'.
func IsMajor(err error, m Major) bool {
	var classError ClassError
	for err != nil {
		if errors.As(err, &classError) {
			if classError.Class().IsMajor(m) {
				return true
			}
			err = errors.Unwrap(classError)
			continue
		}
		return false
	}
	return false
}

// Is reports whether any error in err's chain matches target. It is the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. It is the standard library errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
