package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
)

// EnvPrefix prefixes the environment variables overriding the config file values,
// i.e. JSONAPI_MAX_INCLUDE_DEPTH.
const EnvPrefix = "JSONAPI"

// ReadNamedConfig looks up the config file 'name' (with any viper supported extension)
// in the working directory and its 'configs' subdirectory.
func ReadNamedConfig(name string) (*Serializer, error) {
	v := newViper()
	v.SetConfigName(name)
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return read(v)
}

// ReadConfig reads the config file at 'path'.
func ReadConfig(path string) (*Serializer, error) {
	v := newViper()
	v.SetConfigFile(path)
	return read(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Default()
	for key, value := range map[string]interface{}{
		"naming_convention": def.NamingConvention,
		"via_include_param": def.ViaIncludeParam,
		"max_include_depth": def.MaxIncludeDepth,
		"strict_includes":   def.StrictIncludes,
		"base_url":          def.BaseURL,
		"log_level":         def.LogLevel,
	} {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper) (*Serializer, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapDet(err, ClassReadFailed, "reading serializer config failed")
	}
	log.Debugf("Reading serializer config: %s", v.ConfigFileUsed())

	s := &Serializer{}
	if err := v.Unmarshal(s); err != nil {
		return nil, errors.WrapDet(err, ClassReadFailed, "decoding serializer config failed")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
