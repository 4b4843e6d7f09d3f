/*
Package jsonapi contains the JSON:API relationship inclusion engine.

The Serializer walks the declared relationships of the primary resource and, for the relationships
named by the include specification, resolves their targets and collects the full resource objects
into the flat, deduplicated 'included' list. The relationships that are not included are rendered
with their links only, and in the 'via include param' mode the ones without any links are omitted.
The targets of the relationships that are not included are never read.

	registry := mapping.NewRegistry()
	registry.MustRegister(authors, posts, tags)

	s, err := jsonapi.New(registry)
	if err != nil {
		...
	}
	result, err := s.Serialize("authors", author, []interface{}{"tags", map[string]interface{}{"posts": "tags"}})
	if err != nil {
		...
	}
	err = jsonapi.Marshal(w, result)
*/
package jsonapi
