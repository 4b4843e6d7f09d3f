package jsonapi

import (
	"strings"

	"github.com/neuronlabs/jsonapi-serializer/config"
	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/include"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
)

// Serializer is the JSON:API serializer engine. It serializes the models with the serializer definitions
// from the registry. The Serializer keeps no per request state and is safe for concurrent use as long as
// the models and the link renderers are.
type Serializer struct {
	registry   *mapping.Registry
	config     *config.Serializer
	links      LinkRenderer
	attributes AttributeSerializer
}

// New creates new Serializer for the serializer definitions 'registry'.
func New(registry *mapping.Registry, options ...Option) (*Serializer, error) {
	if registry == nil {
		return nil, errors.NewDet(ClassInvalidInput, "provided nil serializer registry")
	}
	s := &Serializer{registry: registry, config: config.Default()}
	for _, option := range options {
		option(s)
	}

	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if s.links == nil {
		s.links = TemplateRenderer{BaseURL: s.config.BaseURL}
	}
	if s.attributes == nil {
		s.attributes = ModelAttributes{}
	}
	return s, nil
}

// MustNew creates new Serializer. Panics on error.
func MustNew(registry *mapping.Registry, options ...Option) *Serializer {
	s, err := New(registry, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// Config gets the serializer config.
func (s *Serializer) Config() *config.Serializer {
	return s.config
}

// Result is the serialized primary data with its included resources.
type Result struct {
	Data     []*Node
	Included []*Node
	Many     bool
}

// Relationships gets the relationship objects of the primary resource. For the many primary resources it
// returns the relationships of the first one.
func (r *Result) Relationships() map[string]*RelationshipObject {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0].Relationships
}

// RelationshipNames gets the primary resource relationship names in the declaration order.
func (r *Result) RelationshipNames() []string {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0].RelationshipNames()
}

// Serialize serializes the 'object' with the serializer of the 'typeName' resource type. The 'spec' is the
// include specification parsed with the include.Parse. A nil 'object' results in the null primary data.
func (s *Serializer) Serialize(typeName string, object mapping.Model, spec interface{}) (*Result, error) {
	var objects []mapping.Model
	if !isNil(object) {
		objects = append(objects, object)
	}
	result, err := s.serialize(typeName, objects, spec)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SerializeMany serializes the 'objects' with the serializer of the 'typeName' resource type.
func (s *Serializer) SerializeMany(typeName string, objects []mapping.Model, spec interface{}) (*Result, error) {
	for i, object := range objects {
		if isNil(object) {
			return nil, errors.NewDetf(ClassInvalidInput, "nil object at index: %d", i)
		}
	}
	result, err := s.serialize(typeName, objects, spec)
	if err != nil {
		return nil, err
	}
	result.Many = true
	return result, nil
}

func (s *Serializer) serialize(typeName string, objects []mapping.Model, spec interface{}) (*Result, error) {
	root, err := s.serializer(typeName)
	if err != nil {
		return nil, err
	}

	paths, err := include.ParseWithOptions(spec, include.ParseOptions{MaxDepth: s.config.MaxIncludeDepth})
	if err != nil {
		return nil, err
	}
	if s.config.StrictIncludes {
		if err = s.checkIncludes(root, paths); err != nil {
			return nil, err
		}
	}
	logger.Debug2f("Serializing: %d '%s' resources with includes: '%s'", len(objects), typeName, paths)

	c := s.newCollector(paths)
	for _, object := range objects {
		c.primary(root, object)
	}

	result := &Result{Data: make([]*Node, 0, len(objects))}
	for _, object := range objects {
		n, err := c.node(root, object, "")
		if err != nil {
			return nil, err
		}
		result.Data = append(result.Data, n)
	}
	result.Included = c.included.nodes
	return result, nil
}

// checkIncludes checks if all the 'paths' matches the declared relationships.
func (s *Serializer) checkIncludes(root *mapping.Serializer, paths *include.Paths) error {
	for _, path := range paths.List() {
		current := root
		names := strings.Split(path, include.Separator)
		for i, name := range names {
			r, ok := current.Relationship(name)
			if !ok {
				return errors.NewDetf(ClassUnknownInclude, "include path: '%s' - relationship: '%s' is not declared for: '%s'", path, name, current.Type())
			}
			if i == len(names)-1 {
				break
			}
			next, err := s.serializer(r.SerializerType())
			if err != nil {
				return err
			}
			current = next
		}
	}
	return nil
}

func (s *Serializer) serializer(typeName string) (*mapping.Serializer, error) {
	return s.registry.GetSerializer(typeName)
}
