package jsonapi

import (
	"github.com/neuronlabs/jsonapi-serializer/config"
)

// Option is the Serializer option function.
type Option func(s *Serializer)

// WithConfig sets the serializer config. The config is validated by the New function.
func WithConfig(c *config.Serializer) Option {
	return func(s *Serializer) {
		s.config = c
	}
}

// WithLinkRenderer sets the relationship link renderer.
func WithLinkRenderer(renderer LinkRenderer) Option {
	return func(s *Serializer) {
		s.links = renderer
	}
}

// WithAttributeSerializer sets the resource attribute serializer.
func WithAttributeSerializer(attributes AttributeSerializer) Option {
	return func(s *Serializer) {
		s.attributes = attributes
	}
}
