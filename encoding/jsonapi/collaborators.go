package jsonapi

import (
	"strings"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
)

// LinkRenderer renders the relationship link templates.
type LinkRenderer interface {
	RenderLink(template mapping.LinkTemplate, primary mapping.Model) (string, error)
}

// AttributeSerializer gets the attributes of the resource object for the model 'm' serialized with 's'.
type AttributeSerializer interface {
	Attributes(s *mapping.Serializer, m mapping.Model) (map[string]interface{}, error)
}

// TemplateRenderer is the default LinkRenderer. The literal templates are returned as they are and the
// function templates are called with the primary model. If the BaseURL is set it prefixes the literals
// that are relative to the root, i.e. '/authors/1/tags'.
type TemplateRenderer struct {
	BaseURL string
}

// RenderLink implements LinkRenderer interface.
func (t TemplateRenderer) RenderLink(template mapping.LinkTemplate, primary mapping.Model) (string, error) {
	if template.IsFunc() {
		return template.Func(primary)
	}
	if t.BaseURL != "" && strings.HasPrefix(template.Literal, "/") && !strings.HasPrefix(template.Literal, "//") {
		return strings.TrimSuffix(t.BaseURL, "/") + template.Literal, nil
	}
	return template.Literal, nil
}

// ModelAttributes is the default AttributeSerializer. It reads the declared attributes with the
// Model.ReadAttribute. The 'id' attribute is a part of the resource identifier and is skipped.
type ModelAttributes struct{}

// Attributes implements AttributeSerializer interface.
func (ModelAttributes) Attributes(s *mapping.Serializer, m mapping.Model) (map[string]interface{}, error) {
	attributes := map[string]interface{}{}
	for _, name := range s.Attributes() {
		if name == "id" {
			continue
		}
		value, err := m.ReadAttribute(name)
		if err != nil {
			return nil, errors.WrapDetf(err, ClassInvocation, "reading: '%s' attribute: '%s'", s.Type(), name)
		}
		if sm, ok := value.(*mapping.StructModel); ok {
			value = sm.Interface()
		}
		attributes[name] = value
	}
	return attributes, nil
}
