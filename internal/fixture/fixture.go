// Package fixture loads the serializer definitions and the object graph from the yaml documents.
// It is used by the command line tool and the tests.
//
// The objects reference their related objects by the identifiers:
//
//	serializers:
//	  - type: authors
//	    attributes: [name]
//	    relationships:
//	      - name: posts
//	        kind: to_many
//	        links:
//	          related: /authors/1/posts
//	  - type: posts
//	    attributes: [title]
//	objects:
//	  authors:
//	    - {id: 1, name: Ann, posts: [p1]}
//	  posts:
//	    - {id: p1, title: Hello}
package fixture

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

// Serializer is the yaml serializer definition.
type Serializer struct {
	Type            string          `yaml:"type"`
	Extends         string          `yaml:"extends,omitempty"`
	Attributes      []string        `yaml:"attributes,omitempty"`
	ViaIncludeParam *bool           `yaml:"via_include_param,omitempty"`
	Relationships   []*Relationship `yaml:"relationships,omitempty"`
}

// Relationship is the yaml relationship definition.
type Relationship struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"`
	Serializer string            `yaml:"serializer,omitempty"`
	Links      map[string]string `yaml:"links,omitempty"`
}

// Document is the yaml fixture document.
type Document struct {
	Serializers []*Serializer                       `yaml:"serializers"`
	Objects     map[string][]map[string]interface{} `yaml:"objects"`
}

// Fixture is the loaded fixture with the serializers registry and the object graph.
type Fixture struct {
	Registry *mapping.Registry

	objects map[string][]mapping.Object
}

// LoadFile loads the fixture from the file at 'path'.
func LoadFile(path string, naming namer.NamingConvention) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapDetf(err, ClassInvalidFixture, "opening fixture file: '%s'", path)
	}
	defer f.Close()

	return Load(f, naming)
}

// Load loads the fixture from the yaml document read from 'r'. The 'naming' convention is used to derive
// the serializer types of the relationships without the serializer defined.
func Load(r io.Reader, naming namer.NamingConvention) (*Fixture, error) {
	doc := &Document{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.WrapDet(err, ClassInvalidFixture, "decoding fixture document")
	}

	fixture := &Fixture{Registry: mapping.NewRegistry(), objects: map[string][]mapping.Object{}}
	if err := fixture.registerSerializers(doc.Serializers, naming); err != nil {
		return nil, err
	}
	if err := fixture.buildObjects(doc.Objects); err != nil {
		return nil, err
	}
	return fixture, nil
}

// Object gets the object of the 'typ' resource type with given 'id'.
func (f *Fixture) Object(typ, id string) (mapping.Object, error) {
	for _, o := range f.objects[typ] {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, errors.NewDetf(ClassObjectNotFound, "object: '%s/%s' not found", typ, id)
}

// Objects gets the objects of the 'typ' resource type in the document order.
func (f *Fixture) Objects(typ string) []mapping.Model {
	models := make([]mapping.Model, len(f.objects[typ]))
	for i, o := range f.objects[typ] {
		models[i] = o
	}
	return models
}

func (f *Fixture) registerSerializers(definitions []*Serializer, naming namer.NamingConvention) error {
	for _, def := range definitions {
		var b *mapping.Builder
		if def.Extends != "" {
			parent, err := f.Registry.GetSerializer(def.Extends)
			if err != nil {
				return err
			}
			b = parent.Extend(def.Type)
		} else {
			b = mapping.NewBuilder(def.Type)
		}
		b.Naming(naming).Attributes(def.Attributes...)
		if def.ViaIncludeParam != nil {
			b.ViaIncludeParam(*def.ViaIncludeParam)
		}

		for _, r := range def.Relationships {
			var options []mapping.RelationshipOption
			if r.Serializer != "" {
				options = append(options, mapping.WithSerializer(r.Serializer))
			}
			relations := lo.Keys(r.Links)
			sort.Strings(relations)
			for _, relation := range relations {
				options = append(options, mapping.WithLink(relation, r.Links[relation]))
			}
			if err := b.DeclareRelationship(r.Name, parseKind(r.Kind), options...); err != nil {
				return err
			}
		}

		s, err := b.Build()
		if err != nil {
			return err
		}
		if err = f.Registry.Register(s); err != nil {
			return err
		}
		log.Debug2f("Fixture serializer: '%s' registered", s.Type())
	}
	return nil
}

func (f *Fixture) buildObjects(objects map[string][]map[string]interface{}) error {
	types := lo.Keys(objects)
	sort.Strings(types)

	for _, typ := range types {
		for i, values := range objects[typ] {
			if _, ok := values["id"]; !ok {
				return errors.NewDetf(ClassInvalidFixture, "object: '%s' at index: %d has no id", typ, i)
			}
			f.objects[typ] = append(f.objects[typ], mapping.Object(values))
		}
	}

	// Replace the relationship identifiers with the related objects.
	for _, typ := range types {
		s, ok := f.Registry.Serializer(typ)
		if !ok {
			return errors.NewDetf(ClassInvalidFixture, "objects of type: '%s' has no serializer", typ)
		}
		for _, o := range f.objects[typ] {
			for _, r := range s.Relationships() {
				ref, ok := o[r.Name()]
				if !ok {
					continue
				}
				related, err := f.resolve(r, ref)
				if err != nil {
					return errors.WrapDetf(err, ClassInvalidFixture, "object: '%s/%s' relationship: '%s'", typ, o.ID(), r.Name())
				}
				o[r.Name()] = related
			}
		}
	}
	return nil
}

func (f *Fixture) resolve(r *mapping.Relationship, ref interface{}) (interface{}, error) {
	if ref == nil {
		return nil, nil
	}
	if r.Kind() == mapping.ToOne {
		return f.Object(r.SerializerType(), fmt.Sprint(ref))
	}

	ids, ok := ref.([]interface{})
	if !ok {
		return nil, errors.NewDetf(ClassInvalidFixture, "to-many reference is not a list: '%v'", ref)
	}
	models := make([]mapping.Model, len(ids))
	for i, id := range ids {
		o, err := f.Object(r.SerializerType(), fmt.Sprint(id))
		if err != nil {
			return nil, err
		}
		models[i] = o
	}
	return models, nil
}

func parseKind(kind string) mapping.Kind {
	switch strings.ToLower(strings.ReplaceAll(kind, "-", "_")) {
	case "to_one", "has_one", "belongs_to", "one":
		return mapping.ToOne
	case "to_many", "has_many", "many":
		return mapping.ToMany
	}
	return mapping.KindUnknown
}
