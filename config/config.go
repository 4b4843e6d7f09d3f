// Package config contains the configuration of the serializer engine. The configuration
// might be read from the file with the viper readers or created with the Default function.
package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

var validate = validator.New()

// Serializer defines the configuration for the serializer engine.
type Serializer struct {
	// NamingConvention is the naming convention used to derive the resource type names
	// of the relationships that doesn't define their serializer. The serializer engine doesn't read it:
	// it is passed to the mapping.Builder.Naming of the declared serializers, see the Naming method.
	// Allowed values:
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"oneof=camel lower_camel snake kebab"`

	// ViaIncludeParam is the default value of the serializers 'via include param' mode.
	// In this mode the relationships that are not included and have no links are omitted.
	ViaIncludeParam bool `mapstructure:"via_include_param"`

	// MaxIncludeDepth is the maximum number of the dotted include path segments.
	MaxIncludeDepth int `mapstructure:"max_include_depth" validate:"min=1,max=64"`

	// StrictIncludes sets the mode where included paths that doesn't match any
	// declared relationship are treated as errors.
	StrictIncludes bool `mapstructure:"strict_includes"`

	// BaseURL is the url prefixed to the relative relationship links.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// LogLevel is the logging level. It is applied by the application with the log.SetLevel.
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug3 debug2 debug info warning error critical"`
}

// Validate validates the config values.
func (s *Serializer) Validate() error {
	if s == nil {
		return errors.NewDet(ClassNilValue, "provided nil serializer config")
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.WrapDet(err, ClassInvalidValue, "validating serializer config failed")
	}

	multi := errors.MultiError{}
	for _, fieldErr := range fieldErrors {
		multi = append(multi, errors.NewDetf(ClassInvalidValue, "invalid config value: '%v' for field: '%s' - '%s' constraint",
			fieldErr.Value(), fieldErr.Field(), fieldErr.Tag()))
	}
	return errors.WrapDet(multi, ClassInvalidValue, "validating serializer config failed")
}

// Naming gets the parsed NamingConvention, i.e. for the mapping.Builder.Naming.
func (s *Serializer) Naming() (namer.NamingConvention, error) {
	var n namer.NamingConvention
	if err := n.Parse(s.NamingConvention); err != nil {
		return n, errors.WrapDet(err, ClassInvalidValue, "invalid naming convention")
	}
	return n, nil
}
