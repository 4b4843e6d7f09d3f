package mapping

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

// Model is the domain object capability required by the serializers.
type Model interface {
	// ID gets the string form of the model's identifier.
	ID() string
	// ReadAttribute reads the attribute or the association value with given 'name'.
	ReadAttribute(name string) (interface{}, error)
}

// AttributeFunc is the deferred attribute value. Object and StructModel invoke it on each read.
type AttributeFunc func() (interface{}, error)

// Object is the map based Model. The identifier is stored under the "id" key.
// The values of AttributeFunc type are invoked on read.
type Object map[string]interface{}

// ID implements Model interface.
func (o Object) ID() string {
	id, _ := formatID(reflect.ValueOf(o["id"]))
	return id
}

// ReadAttribute implements Model interface.
func (o Object) ReadAttribute(name string) (interface{}, error) {
	v, ok := o[name]
	if !ok {
		return nil, errors.NewDetf(ClassAttributeNotFound, "object: '%s' has no attribute: '%s'", o.ID(), name)
	}
	if fn, ok := v.(AttributeFunc); ok {
		return fn()
	}
	if fn, ok := v.(func() (interface{}, error)); ok {
		return fn()
	}
	return v, nil
}

// StructModel is the Model adapter for the struct pointers. The identifier is read from the 'ID' field
// and the attributes are read from the fields or methods with the name converted by the namer.FieldName.
// The struct pointer values, and the slices of them, are adapted as models when read.
type StructModel struct {
	value reflect.Value
}

// Struct adapts the struct pointer 'v' as the Model.
func Struct(v interface{}) (*StructModel, error) {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return nil, errors.NewDetf(ClassInvalidModel, "provided value: '%T' is not a non nil struct pointer", v)
	}
	return &StructModel{value: value}, nil
}

// MustStruct adapts the struct pointer 'v' as the Model. Panics on error.
func MustStruct(v interface{}) *StructModel {
	m, err := Struct(v)
	if err != nil {
		panic(err)
	}
	return m
}

// ID implements Model interface.
func (s *StructModel) ID() string {
	id, _ := formatID(s.value.Elem().FieldByName("ID"))
	return id
}

// Interface gets the adapted struct pointer.
func (s *StructModel) Interface() interface{} {
	return s.value.Interface()
}

// ReadAttribute implements Model interface.
func (s *StructModel) ReadAttribute(name string) (interface{}, error) {
	fieldName := namer.FieldName(name)

	if method := s.value.MethodByName(fieldName); method.IsValid() {
		return callReader(method, name)
	}

	field := s.value.Elem().FieldByName(fieldName)
	if !field.IsValid() {
		return nil, errors.NewDetf(ClassAttributeNotFound, "model: '%s' has no attribute: '%s'", s.value.Type(), name)
	}
	return adaptValue(field), nil
}

// callReader calls the reader method. The method must not take any arguments and must return
// the value with the optional error.
func callReader(method reflect.Value, name string) (interface{}, error) {
	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() == 0 || mt.NumOut() > 2 {
		return nil, errors.NewDetf(ClassInvalidModel, "attribute: '%s' reader method has invalid signature: '%s'", name, mt)
	}
	out := method.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		err, ok := out[1].Interface().(error)
		if !ok {
			return nil, errors.NewDetf(ClassInvalidModel, "attribute: '%s' reader method second result is not an error", name)
		}
		return nil, err
	}
	return adaptValue(out[0]), nil
}

// adaptValue converts the struct pointers into StructModels and the slices of the struct pointers into
// the slices of Models.
func adaptValue(v reflect.Value) interface{} {
	switch {
	case isStructPtr(v.Type()):
		if v.IsNil() {
			return nil
		}
		return &StructModel{value: v}
	case v.Kind() == reflect.Slice && isStructPtr(v.Type().Elem()):
		if v.IsNil() {
			return []Model{}
		}
		models := make([]Model, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if elem := v.Index(i); !elem.IsNil() {
				models = append(models, &StructModel{value: elem})
			}
		}
		return models
	}
	return v.Interface()
}

func isStructPtr(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct
}

func formatID(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return "", errors.NewDet(ClassInvalidModel, "no primary value")
	}
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", errors.NewDet(ClassInvalidModel, "nil primary value")
		}
		v = v.Elem()
	}

	if stringer, ok := v.Interface().(fmt.Stringer); ok {
		return stringer.String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return "", errors.NewDetf(ClassInvalidModel, "invalid primary field type: '%s'", v.Type())
}
