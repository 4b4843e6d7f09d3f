package jsonapi

import (
	"reflect"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/include"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
)

// resolvedRelationship is the relationship resolved for a single primary model within one request.
type resolvedRelationship struct {
	relationship *mapping.Relationship
	included     bool
	omitted      bool
	targets      []*target
}

// data gets the relationship object data. Used only for included relationships.
func (r *resolvedRelationship) data() interface{} {
	if r.relationship.Kind() == mapping.ToOne {
		if len(r.targets) == 0 {
			return nil
		}
		return r.targets[0].linkage()
	}
	data := make([]interface{}, len(r.targets))
	for i, t := range r.targets {
		data[i] = t.linkage()
	}
	return data
}

// target is the relationship target. It is either the model with its serializer or the raw value.
type target struct {
	model      mapping.Model
	serializer *mapping.Serializer
	raw        interface{}
}

func (t *target) key() resourceKey {
	return resourceKey{typ: t.serializer.Type(), id: t.model.ID()}
}

func (t *target) linkage() interface{} {
	if t.model == nil {
		return t.raw
	}
	return &Identifier{ID: t.model.ID(), Type: t.serializer.Type()}
}

// memoKey is the key of the relationship values resolved within single request.
type memoKey struct {
	typ, id, relationship string
}

// resolve resolves the relationship 'r' of the 'primary' model serialized with 's' at the 'currentPath'.
// The relationship value is read only if the relationship is included.
func (c *collector) resolve(s *mapping.Serializer, r *mapping.Relationship, primary mapping.Model, currentPath string) (*resolvedRelationship, error) {
	path := include.Join(currentPath, r.Name())
	resolved := &resolvedRelationship{relationship: r, included: c.paths.Contains(path)}

	if !resolved.included {
		if s.ViaIncludeParam(c.config.ViaIncludeParam) && !r.HasLinks() {
			logger.Debug3f("Relationship: '%s' of: '%s' omitted", path, s.Type())
			resolved.omitted = true
		} else {
			logger.Debug3f("Relationship: '%s' of: '%s' not included", path, s.Type())
		}
		return resolved, nil
	}

	value, err := c.load(s, r, primary)
	if err != nil {
		return nil, err
	}
	if resolved.targets, err = c.targets(s, r, value); err != nil {
		return nil, err
	}
	logger.Debug3f("Relationship: '%s' of: '%s' included with: %d targets", path, s.Type(), len(resolved.targets))
	return resolved, nil
}

// load gets the relationship raw value from the relationship source. The value is memoized
// for the primary model's resource identifier.
func (c *collector) load(s *mapping.Serializer, r *mapping.Relationship, primary mapping.Model) (interface{}, error) {
	key := memoKey{typ: s.Type(), id: primary.ID(), relationship: r.Name()}
	if value, ok := c.memo[key]; ok {
		return value, nil
	}

	var (
		value interface{}
		err   error
	)
	switch r.Source() {
	case mapping.SourceLoader:
		logger.Debug2f("Invoking: '%s' relationship: '%s' loader", s.Type(), r.Name())
		value, err = r.Loader()()
	case mapping.SourceInline:
		logger.Debug2f("Invoking: '%s' relationship: '%s' inline block", s.Type(), r.Name())
		value, err = r.Inline()(primary)
	default:
		value, err = primary.ReadAttribute(r.Name())
	}
	if err != nil {
		logger.Debugf("Resolving: '%s' relationship: '%s' failed: %v", s.Type(), r.Name(), err)
		return nil, errors.WrapDetf(err, ClassInvocation, "resolving: '%s' relationship: '%s'", s.Type(), r.Name())
	}
	c.memo[key] = value
	return value, nil
}

func (c *collector) targets(s *mapping.Serializer, r *mapping.Relationship, value interface{}) ([]*target, error) {
	if r.Kind() == mapping.ToOne {
		if isNil(value) {
			return nil, nil
		}
		t, err := c.target(r, value)
		if err != nil {
			return nil, err
		}
		return []*target{t}, nil
	}

	elems, ok := sequence(value)
	if !ok {
		return nil, errors.NewDetf(ClassInvalidTargets, "to-many relationship: '%s' of: '%s' value of type: '%T' is not a sequence", r.Name(), s.Type(), value)
	}
	targets := make([]*target, 0, len(elems))
	for _, elem := range elems {
		if isNil(elem) {
			continue
		}
		t, err := c.target(r, elem)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (c *collector) target(r *mapping.Relationship, value interface{}) (*target, error) {
	model, ok := value.(mapping.Model)
	if !ok {
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return &target{raw: value}, nil
		}
		sm, err := mapping.Struct(value)
		if err != nil {
			return nil, err
		}
		model = sm
	}
	s, err := c.serializer(r.SerializerType())
	if err != nil {
		return nil, err
	}
	return &target{model: model, serializer: s}, nil
}

// sequence gets the elements of the to-many relationship value.
func sequence(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case []interface{}:
		return v, true
	case []mapping.Model:
		elems := make([]interface{}, len(v))
		for i, m := range v {
			elems[i] = m
		}
		return elems, true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems[i] = v.Index(i).Interface()
		}
		return elems, true
	case reflect.Ptr:
		if v.IsNil() {
			return nil, true
		}
	}
	return nil, false
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
