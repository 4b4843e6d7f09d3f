package namer

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"github.com/samber/lo"

	"github.com/neuronlabs/jsonapi-serializer/errors"
)

// NamingConvention defines how the declared names are formatted into the resource type names.
type NamingConvention int

// The supported naming conventions. The zero value keeps the names unchanged.
const (
	_ NamingConvention = iota
	// SnakeCase formats 'BlogPost' as 'blog_post'.
	SnakeCase
	// CamelCase formats 'blog_post' as 'BlogPost'.
	CamelCase
	// LowerCamelCase formats 'BlogPost' as 'blogPost'.
	LowerCamelCase
	// KebabCase formats 'BlogPost' as 'blog-post'.
	KebabCase
)

type convention struct {
	name    string
	aliases []string
	format  Namer
}

var conventions = map[NamingConvention]convention{
	SnakeCase:      {name: "snake", format: strcase.ToSnake},
	CamelCase:      {name: "camel", format: strcase.ToCamel},
	LowerCamelCase: {name: "lower_camel", aliases: []string{"lowercamel"}, format: strcase.ToLowerCamel},
	KebabCase:      {name: "kebab", format: strcase.ToKebab},
}

// Namer formats a name.
type Namer func(string) string

// Parse sets the convention named 'name', i.e. 'snake' or 'lower_camel'. The name is case insensitive.
func (n *NamingConvention) Parse(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for value, c := range conventions {
		if c.name == name || lo.Contains(c.aliases, name) {
			*n = value
			return nil
		}
	}
	return errors.NewDetf(ClassNamingConvention, "unknown naming convention name: %s", name)
}

// Namer returns the formatting function of the convention.
func (n NamingConvention) Namer() Namer {
	if c, ok := conventions[n]; ok {
		return c.format
	}
	return func(raw string) string { return raw }
}

// Collection pluralizes and formats the 'raw' name, i.e. SnakeCase changes 'BlogPost' into 'blog_posts'.
func (n NamingConvention) Collection(raw string) string {
	return n.Namer()(inflection.Plural(raw))
}

func (n NamingConvention) String() string {
	if c, ok := conventions[n]; ok {
		return c.name
	}
	return "unknown"
}

// FieldName is the exported struct field or method name for the declared 'name'.
// The 'id' becomes 'ID', 'inline_comments' becomes 'InlineComments'.
func FieldName(name string) string {
	if strings.EqualFold(name, "id") {
		return "ID"
	}
	return strcase.ToCamel(name)
}

