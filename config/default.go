package config

// Default returns the default serializer configuration.
func Default() *Serializer {
	return &Serializer{
		NamingConvention: "snake",
		MaxIncludeDepth:  8,
		LogLevel:         "info",
	}
}
