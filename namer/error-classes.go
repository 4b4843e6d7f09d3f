package namer

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MnrNaming is the config minor error classification for the naming issues.
	MnrNaming errors.Minor
	// ClassNamingConvention is the error classification for unknown naming conventions.
	ClassNamingConvention errors.Class
)

func init() {
	MnrNaming = errors.MjrConfig.MustRegisterMinor("Naming", "naming convention issues")
	ClassNamingConvention = MnrNaming.MustRegisterIndex("Unknown Convention", "unknown naming convention name").Class()
}
