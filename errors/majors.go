package errors

var (
	// MjrConfig is the major classification of the configuration errors: invalid serializer declarations,
	// malformed include specifications or invalid config values.
	MjrConfig Major
	// MjrInvocation is the major classification of the failures returned by the relationship loaders
	// and the model attribute readers.
	MjrInvocation Major
)

func init() {
	MjrConfig = MustRegisterMajor("Config", "configuration and declaration issues")
	MjrInvocation = MustRegisterMajor("Invocation", "loader or attribute reader failures")
}

// IsConfiguration checks if the 'err' is classified as configuration error.
func IsConfiguration(err error) bool {
	return IsMajor(err, MjrConfig)
}

// IsInvocation checks if the 'err' is classified as invocation error.
func IsInvocation(err error) bool {
	return IsMajor(err, MjrInvocation)
}
