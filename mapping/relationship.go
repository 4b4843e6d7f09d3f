package mapping

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

// Kind is the relationship cardinality.
type Kind int

const (
	// KindUnknown is the unknown relationship kind.
	KindUnknown Kind = iota
	// ToOne is the relationship kind with a single target.
	ToOne
	// ToMany is the relationship kind with ordered list of targets.
	ToMany
)

// String implements fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case ToOne:
		return "ToOne"
	case ToMany:
		return "ToMany"
	}
	return "Unknown"
}

func (k Kind) valid() bool {
	return k == ToOne || k == ToMany
}

// SourceKind defines how the relationship targets are resolved.
type SourceKind int

const (
	// SourceAssociation reads the targets from the model with the relationship name.
	SourceAssociation SourceKind = iota
	// SourceLoader invokes the deferred loader.
	SourceLoader
	// SourceInline invokes the inline block declared with the relationship.
	SourceInline
)

// String implements fmt.Stringer interface.
func (s SourceKind) String() string {
	switch s {
	case SourceAssociation:
		return "Association"
	case SourceLoader:
		return "Loader"
	case SourceInline:
		return "Inline"
	}
	return "Unknown"
}

// Loader is the deferred relationship data loader. It is invoked only if the relationship is included.
type Loader func() (interface{}, error)

// Inline is the block returning relationship targets for given primary model.
type Inline func(primary Model) (interface{}, error)

// LinkFunc is the link template function rendered against the primary model.
type LinkFunc func(primary Model) (string, error)

// LinkTemplate is the relationship link template. It is either a literal URL or a function.
type LinkTemplate struct {
	Relation string
	Literal  string
	Func     LinkFunc
}

// IsFunc checks if the template is a function.
func (l LinkTemplate) IsFunc() bool {
	return l.Func != nil
}

// NewLinkTemplate creates the link template for the 'relation' name. The 'template' must be a string,
// a LinkFunc or the func(Model) (string, error).
func NewLinkTemplate(relation string, template interface{}) (LinkTemplate, error) {
	if relation == "" {
		return LinkTemplate{}, errors.NewDet(ClassInvalidLink, "empty link relation name")
	}
	switch t := template.(type) {
	case string:
		return LinkTemplate{Relation: relation, Literal: t}, nil
	case LinkFunc:
		if t != nil {
			return LinkTemplate{Relation: relation, Func: t}, nil
		}
	case func(Model) (string, error):
		if t != nil {
			return LinkTemplate{Relation: relation, Func: t}, nil
		}
	}
	return LinkTemplate{}, errors.NewDetf(ClassInvalidLink, "link: '%s' template of type: '%T' is not supported", relation, template)
}

// Relationship is the relationship descriptor of the serializer definition.
type Relationship struct {
	name       string
	kind       Kind
	serializer string
	links      []LinkTemplate
	source     SourceKind
	loader     Loader
	inline     Inline
}

// Name gets the relationship name.
func (r *Relationship) Name() string {
	return r.name
}

// Kind gets the relationship kind.
func (r *Relationship) Kind() Kind {
	return r.kind
}

// SerializerType gets the resource type name of the relationship targets serializer.
func (r *Relationship) SerializerType() string {
	return r.serializer
}

// Links gets the ordered relationship link templates.
func (r *Relationship) Links() []LinkTemplate {
	return append([]LinkTemplate(nil), r.links...)
}

// HasLinks checks if the relationship has any link templates.
func (r *Relationship) HasLinks() bool {
	return len(r.links) > 0
}

// Source gets the relationship source kind.
func (r *Relationship) Source() SourceKind {
	return r.source
}

// Loader gets the relationship deferred loader.
func (r *Relationship) Loader() Loader {
	return r.loader
}

// Inline gets the relationship inline block.
func (r *Relationship) Inline() Inline {
	return r.inline
}

func (r *Relationship) copy() *Relationship {
	c := *r
	c.links = r.Links()
	return &c
}

func (r *Relationship) setLink(link LinkTemplate) {
	for i := range r.links {
		if r.links[i].Relation == link.Relation {
			r.links[i] = link
			return
		}
	}
	r.links = append(r.links, link)
}

// RelationshipOption is the option function used on the relationship declaration.
type RelationshipOption func(r *Relationship) error

// WithSerializer sets the resource type name of the relationship targets serializer.
// If not set the serializer is derived from the relationship name with the naming convention.
func WithSerializer(typeName string) RelationshipOption {
	return func(r *Relationship) error {
		if typeName == "" {
			return errors.NewDetf(ClassInvalidName, "relationship: '%s' empty serializer type", r.name)
		}
		r.serializer = typeName
		return nil
	}
}

// WithLink adds the link template for given 'relation'. Redeclared relation replaces the previous template.
func WithLink(relation string, template interface{}) RelationshipOption {
	return func(r *Relationship) error {
		link, err := NewLinkTemplate(relation, template)
		if err != nil {
			return err
		}
		r.setLink(link)
		return nil
	}
}

// WithLoader sets the deferred loader of the relationship.
func WithLoader(loader Loader) RelationshipOption {
	return func(r *Relationship) error {
		if loader == nil {
			return errors.NewDetf(ClassInvalidSource, "relationship: '%s' nil loader", r.name)
		}
		r.source, r.loader, r.inline = SourceLoader, loader, nil
		return nil
	}
}

// WithInline sets the inline block of the relationship.
func WithInline(inline Inline) RelationshipOption {
	return func(r *Relationship) error {
		if inline == nil {
			return errors.NewDetf(ClassInvalidSource, "relationship: '%s' nil inline block", r.name)
		}
		r.source, r.inline, r.loader = SourceInline, inline, nil
		return nil
	}
}
