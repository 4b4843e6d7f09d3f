package log

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MjrLogger is the major logger error classification.
	MjrLogger errors.Major

	// MnrLevel is the logger minor classification for the level issues.
	MnrLevel errors.Minor
	// ClassUnknownLevel is the classification for unknown or unparsable logger level.
	ClassUnknownLevel errors.Class
	// ClassNotLevelSetter is the classification used when the logger doesn't allow to set the level.
	ClassNotLevelSetter errors.Class
)

func init() {
	MjrLogger = errors.MustRegisterMajor("Logger", "logger related issues")

	MnrLevel = MjrLogger.MustRegisterMinor("Level", "logger level issues")
	ClassUnknownLevel = MnrLevel.MustRegisterIndex("Unknown", "unknown logger level").Class()
	ClassNotLevelSetter = MnrLevel.MustRegisterIndex("Not Setter", "logger doesn't implement LevelSetter").Class()
}
