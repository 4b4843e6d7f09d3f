package jsonapi

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/neuronlabs/jsonapi-serializer/errors"
)

// json is the encoder compatible with the standard library. It sorts the map keys so that the
// document for the same result is always the same.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document gets the JSON:API top level document of the result: {"data": ..., "included": [...]}.
// The 'included' member is present only if there are included resources.
func (r *Result) Document() map[string]interface{} {
	doc := map[string]interface{}{}
	if r.Many {
		data := make([]interface{}, len(r.Data))
		for i, n := range r.Data {
			data[i] = n.document()
		}
		doc["data"] = data
	} else if len(r.Data) == 0 {
		doc["data"] = nil
	} else {
		doc["data"] = r.Data[0].document()
	}

	if len(r.Included) > 0 {
		included := make([]interface{}, len(r.Included))
		for i, n := range r.Included {
			included[i] = n.document()
		}
		doc["included"] = included
	}
	return doc
}

// Marshal writes the compact result document into the writer 'w'. The document is followed by the newline.
func Marshal(w io.Writer, result *Result) error {
	data, err := json.Marshal(result.Document())
	if err != nil {
		return errors.WrapDet(err, ClassMarshal, "marshaling document failed")
	}
	return write(w, data)
}

// MarshalIndent writes the result document indented with two spaces into the writer 'w'.
func MarshalIndent(w io.Writer, result *Result) error {
	data, err := json.MarshalIndent(result.Document(), "", "  ")
	if err != nil {
		return errors.WrapDet(err, ClassMarshal, "marshaling document failed")
	}
	return write(w, data)
}

func write(w io.Writer, data []byte) error {
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.WrapDet(err, ClassMarshal, "writing document failed")
	}
	return nil
}
