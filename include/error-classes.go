package include

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MnrInclude is the config minor error classification for the include specification issues.
	MnrInclude errors.Minor
	// ClassInvalidSpec is the error classification for malformed include specifications.
	ClassInvalidSpec errors.Class
	// ClassDepthExceeded is the error classification for the include paths exceeding the maximum depth.
	ClassDepthExceeded errors.Class
)

func init() {
	MnrInclude = errors.MjrConfig.MustRegisterMinor("Include", "include specification issues")

	ClassInvalidSpec = MnrInclude.MustRegisterIndex("Invalid Spec", "malformed include specification").Class()
	ClassDepthExceeded = MnrInclude.MustRegisterIndex("Depth Exceeded", "include path exceeds maximum depth").Class()
}
