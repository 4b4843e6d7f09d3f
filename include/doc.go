// Package include contains the include path parser. It turns the heterogeneous include specification
// - a name, a list of names or a nested mapping of name to sub-specification - into the canonical set of
// dotted relationship paths.
//
// Example:
//	paths, err := include.Parse([]interface{}{"tags", map[string]interface{}{"posts": "tags"}})
//	// paths.List() == []string{"posts", "posts.tags", "tags"}
//
// The JSON:API query parameter form is parsed with the ParseParam function:
//	paths, err := include.ParseParam("tags,posts.tags")
package include
