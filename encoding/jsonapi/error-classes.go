package jsonapi

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
)

var (
	// MnrEncoding is the config minor error classification for the serializing issues.
	MnrEncoding errors.Minor
	// ClassUnknownInclude is the error classification for the include paths that doesn't match
	// any declared relationship. Returned only in the strict includes mode.
	ClassUnknownInclude errors.Class
	// ClassInvalidTargets is the error classification for the to-many relationship values that are not sequences.
	ClassInvalidTargets errors.Class
	// ClassInvalidInput is the error classification for the invalid serializer inputs.
	ClassInvalidInput errors.Class

	// MnrResolve is the invocation minor error classification for the relationship resolving.
	MnrResolve errors.Minor
	// ClassInvocation is the error classification for the failures of the loaders, inline blocks,
	// attribute readers and link functions. The cause is available with errors.Unwrap.
	ClassInvocation errors.Class
	// ClassMarshal is the error classification for the document marshaling failures.
	ClassMarshal errors.Class
)

var logger = log.NewModuleLogger("jsonapi")

func init() {
	MnrEncoding = errors.MjrConfig.MustRegisterMinor("Encoding", "invalid serializing input")
	ClassUnknownInclude = MnrEncoding.MustRegisterIndex("Unknown Include", "include path doesn't match any relationship").Class()
	ClassInvalidTargets = MnrEncoding.MustRegisterIndex("Invalid Targets", "to-many relationship value is not a sequence").Class()
	ClassInvalidInput = MnrEncoding.MustRegisterIndex("Invalid Input", "invalid serializer input").Class()

	MnrResolve = errors.MjrInvocation.MustRegisterMinor("Resolve", "relationship resolving failures")
	ClassInvocation = MnrResolve.MustRegisterIndex("Failed", "loader, reader or link function failed").Class()
	ClassMarshal = MnrResolve.MustRegisterIndex("Marshal", "writing document failed").Class()
}
