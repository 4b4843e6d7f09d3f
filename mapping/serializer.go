package mapping

import (
	"github.com/samber/lo"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

// Serializer is the immutable serializer definition of the resource type.
type Serializer struct {
	typ             string
	attributes      []string
	relationships   []*Relationship
	viaIncludeParam *bool
}

// Type gets the resource type name.
func (s *Serializer) Type() string {
	return s.typ
}

// Attributes gets the declared attribute names.
func (s *Serializer) Attributes() []string {
	return append([]string(nil), s.attributes...)
}

// Relationships gets the relationships in the declaration order.
func (s *Serializer) Relationships() []*Relationship {
	return append([]*Relationship(nil), s.relationships...)
}

// Relationship gets the relationship by its 'name'.
func (s *Serializer) Relationship(name string) (*Relationship, bool) {
	for _, r := range s.relationships {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// ViaIncludeParam checks if the serializer works in the 'via include param' mode. If the mode was not
// declared for the serializer the 'defaultMode' is returned.
func (s *Serializer) ViaIncludeParam(defaultMode bool) bool {
	if s.viaIncludeParam == nil {
		return defaultMode
	}
	return *s.viaIncludeParam
}

// Extend starts the builder of the 'typ' resource serializer that inherits all attributes, relationships
// and the mode of the 's' serializer. The 's' serializer is not changed by the returned builder.
func (s *Serializer) Extend(typ string) *Builder {
	b := NewBuilder(typ)
	b.serializer.attributes = s.Attributes()
	for _, r := range s.relationships {
		b.serializer.relationships = append(b.serializer.relationships, r.copy())
	}
	if s.viaIncludeParam != nil {
		mode := *s.viaIncludeParam
		b.serializer.viaIncludeParam = &mode
	}
	return b
}

// Builder is the serializer definition builder. The declaration errors are returned by the methods that
// return an error and are stored to be returned by the Build method.
type Builder struct {
	serializer Serializer
	naming     namer.NamingConvention
	err        error
}

// NewBuilder creates new serializer builder for the resource type 'typ'.
func NewBuilder(typ string) *Builder {
	return &Builder{serializer: Serializer{typ: typ}, naming: namer.SnakeCase}
}

// Naming sets the naming convention used to derive relationships serializer types.
func (b *Builder) Naming(convention namer.NamingConvention) *Builder {
	b.naming = convention
	return b
}

// Attributes declares the attribute names. Already declared names are skipped.
func (b *Builder) Attributes(names ...string) *Builder {
	for _, name := range names {
		if name == "" {
			b.setErr(errors.NewDetf(ClassInvalidName, "serializer: '%s' empty attribute name", b.serializer.typ))
			continue
		}
		if !lo.Contains(b.serializer.attributes, name) {
			b.serializer.attributes = append(b.serializer.attributes, name)
		}
	}
	return b
}

// ViaIncludeParam sets the 'via include param' mode. In this mode the relationships that are neither included
// nor have any links are omitted.
func (b *Builder) ViaIncludeParam(mode bool) *Builder {
	b.serializer.viaIncludeParam = &mode
	return b
}

// DeclareRelationship declares the relationship with given 'name' and 'kind'. Redeclared relationship
// replaces the previous one at its position.
func (b *Builder) DeclareRelationship(name string, kind Kind, options ...RelationshipOption) error {
	err := b.declareRelationship(name, kind, options...)
	b.setErr(err)
	return err
}

// HasMany declares the to-many relationship.
func (b *Builder) HasMany(name string, options ...RelationshipOption) *Builder {
	b.DeclareRelationship(name, ToMany, options...) // nolint: errcheck
	return b
}

// HasOne declares the to-one relationship.
func (b *Builder) HasOne(name string, options ...RelationshipOption) *Builder {
	b.DeclareRelationship(name, ToOne, options...) // nolint: errcheck
	return b
}

// DeclareLink adds the link template to the declared relationship.
func (b *Builder) DeclareLink(relationship, relation string, template interface{}) error {
	err := b.modify(relationship, WithLink(relation, template))
	b.setErr(err)
	return err
}

// DeclareLoader sets the deferred loader of the declared relationship.
func (b *Builder) DeclareLoader(relationship string, loader Loader) error {
	err := b.modify(relationship, WithLoader(loader))
	b.setErr(err)
	return err
}

// Build gets the serializer definition or the first declaration error.
func (b *Builder) Build() (*Serializer, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.serializer.typ == "" {
		return nil, errors.NewDet(ClassInvalidName, "empty serializer type")
	}

	s := &Serializer{
		typ:             b.serializer.typ,
		attributes:      b.serializer.Attributes(),
		viaIncludeParam: b.serializer.viaIncludeParam,
	}
	for _, r := range b.serializer.relationships {
		r = r.copy()
		if r.serializer == "" {
			r.serializer = b.naming.Collection(r.name)
		}
		s.relationships = append(s.relationships, r)
	}
	log.Debug3f("Serializer: '%s' built with: %d relationships", s.typ, len(s.relationships))
	return s, nil
}

// MustBuild gets the serializer definition. Panics on declaration error.
func (b *Builder) MustBuild() *Serializer {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Builder) declareRelationship(name string, kind Kind, options ...RelationshipOption) error {
	if name == "" {
		return errors.NewDetf(ClassInvalidName, "serializer: '%s' empty relationship name", b.serializer.typ)
	}
	if !kind.valid() {
		return errors.NewDetf(ClassUnknownKind, "serializer: '%s' relationship: '%s' unknown kind: '%d'", b.serializer.typ, name, kind)
	}

	r := &Relationship{name: name, kind: kind}
	for _, option := range options {
		if err := option(r); err != nil {
			return err
		}
	}

	for i, declared := range b.serializer.relationships {
		if declared.name == name {
			if declared.kind != kind {
				log.Debugf("Serializer: '%s' relationship: '%s' redeclared from: %s to: %s", b.serializer.typ, name, declared.kind, kind)
			}
			b.serializer.relationships[i] = r
			return nil
		}
	}
	b.serializer.relationships = append(b.serializer.relationships, r)
	return nil
}

func (b *Builder) modify(name string, option RelationshipOption) error {
	for i, declared := range b.serializer.relationships {
		if declared.name != name {
			continue
		}
		r := declared.copy()
		if err := option(r); err != nil {
			return err
		}
		b.serializer.relationships[i] = r
		return nil
	}
	return errors.NewDetf(ClassRelationshipNotFound, "serializer: '%s' relationship: '%s' is not declared", b.serializer.typ, name)
}

func (b *Builder) setErr(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

