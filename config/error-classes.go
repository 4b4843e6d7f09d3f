package config

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MnrConfigValue is the 'MjrConfig' minor error classification for the config value issues.
	MnrConfigValue errors.Minor
	// ClassInvalidValue is the errors classification for invalid config values.
	ClassInvalidValue errors.Class
	// ClassNilValue is the errors classification for the nil config value.
	ClassNilValue errors.Class
	// ClassReadFailed is the errors classification for the failures while reading the config.
	ClassReadFailed errors.Class
)

func init() {
	MnrConfigValue = errors.MjrConfig.MustRegisterMinor("Value", "config value issues")

	ClassInvalidValue = MnrConfigValue.MustRegisterIndex("Invalid", "validating config failed").Class()
	ClassNilValue = MnrConfigValue.MustRegisterIndex("Nil", "provided nil config value").Class()
	ClassReadFailed = MnrConfigValue.MustRegisterIndex("Read Failed", "reading config failed").Class()
}
