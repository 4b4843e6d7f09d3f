package include

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
)

// ParseOptions are the options used by the parser.
type ParseOptions struct {
	// MaxDepth is the maximum number of path segments. Zero value means no limit.
	MaxDepth int
}

// Parse parses the include specification 'spec' into canonical set of paths.
// The 'spec' might be:
//	- nil - an empty set,
//	- string - a single name, dotted path or a comma separated list of them,
//	- a slice of names and/or mappings,
//	- a mapping of name to the sub-specification of the same shape.
// Any other shape results in the ClassInvalidSpec error.
func Parse(spec interface{}) (*Paths, error) {
	return ParseWithOptions(spec, ParseOptions{})
}

// MustParse parses the include specification 'spec'. Panics on error.
func MustParse(spec interface{}) *Paths {
	p, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseParam parses the JSON:API 'include' query parameter i.e.: 'tags,posts.tags'.
func ParseParam(param string) (*Paths, error) {
	return Parse(param)
}

// ParseWithOptions parses the include specification 'spec' with provided 'options'.
func ParseWithOptions(spec interface{}, options ParseOptions) (*Paths, error) {
	if parsed, ok := spec.(*Paths); ok {
		if parsed == nil {
			return Empty(), nil
		}
		if err := options.checkDepth(parsed); err != nil {
			return nil, err
		}
		return parsed, nil
	}

	paths := Empty()
	list, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}
	for _, path := range list {
		paths.add(path)
	}

	if err = options.checkDepth(paths); err != nil {
		return nil, err
	}
	log.Debug3f("Parsed include paths: '%s'", paths)
	return paths, nil
}

func (o ParseOptions) checkDepth(paths *Paths) error {
	if o.MaxDepth <= 0 {
		return nil
	}
	if depth := paths.Depth(); depth > o.MaxDepth {
		return errors.NewDetf(ClassDepthExceeded, "include path depth: '%d' exceeds the maximum of: '%d'", depth, o.MaxDepth)
	}
	return nil
}

// parseSpec returns the list of the dotted paths that are defined by the 'spec'.
func parseSpec(spec interface{}) ([]string, error) {
	switch s := spec.(type) {
	case nil:
		return nil, nil
	case string:
		return parseString(s)
	case []string:
		var paths []string
		for _, name := range s {
			sub, err := parseString(name)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		}
		return paths, nil
	case []interface{}:
		var paths []string
		for _, elem := range s {
			sub, err := parseSpec(elem)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		}
		return paths, nil
	case map[string]interface{}:
		return parseMapping(s)
	case map[string]string:
		m := make(map[string]interface{}, len(s))
		for k, v := range s {
			m[k] = v
		}
		return parseMapping(m)
	case *Paths:
		return s.List(), nil
	}
	return parseReflect(reflect.ValueOf(spec))
}

// parseReflect parses the slices and the string keyed maps of other types i.e.: map[string][]string,
// map[interface{}]interface{} with string keys.
func parseReflect(v reflect.Value) ([]string, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems[i] = v.Index(i).Interface()
		}
		return parseSpec(elems)
	case reflect.Map:
		m := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key()
			if key.Kind() == reflect.Interface {
				key = key.Elem()
			}
			if key.Kind() != reflect.String {
				return nil, errors.NewDetf(ClassInvalidSpec, "invalid include specification key: '%v'", iter.Key().Interface())
			}
			m[key.String()] = iter.Value().Interface()
		}
		return parseMapping(m)
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return parseSpec(v.Elem().Interface())
	case reflect.Invalid:
		return nil, nil
	}
	return nil, errors.NewDetf(ClassInvalidSpec, "invalid include specification type: '%s'", v.Type())
}

func parseMapping(m map[string]interface{}) ([]string, error) {
	names := lo.Keys(m)
	sort.Strings(names)

	var paths []string
	for _, name := range names {
		if err := validateName(name); err != nil {
			return nil, err
		}
		paths = append(paths, name)

		sub, err := parseSpec(m[name])
		if err != nil {
			return nil, err
		}
		paths = append(paths, lo.Map(sub, func(path string, _ int) string {
			return Join(name, path)
		})...)
	}
	return paths, nil
}

func parseString(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var paths []string
	for _, path := range strings.Split(s, ",") {
		path = strings.TrimSpace(path)
		for _, name := range strings.Split(path, Separator) {
			if err := validateName(name); err != nil {
				return nil, err
			}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.NewDet(ClassInvalidSpec, "empty name in the include specification")
	}
	if strings.IndexFunc(name, unicode.IsSpace) != -1 {
		return errors.NewDetf(ClassInvalidSpec, "invalid name: '%s' in the include specification", name)
	}
	return nil
}
