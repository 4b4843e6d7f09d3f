package include

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Separator is the dotted include path segments separator.
const Separator = "."

// Paths is the canonical set of the dotted include paths. If the set contains the path 'a.b' it contains also
// its ancestor 'a'. The presence of an ancestor doesn't imply the presence of any of its descendants.
// Paths are immutable once parsed.
type Paths struct {
	set map[string]struct{}
}

// Empty creates an empty set of paths.
func Empty() *Paths {
	return &Paths{set: map[string]struct{}{}}
}

// Contains checks if given dotted 'path' is included.
func (p *Paths) Contains(path string) bool {
	if p == nil {
		return false
	}
	_, ok := p.set[path]
	return ok
}

// Depth gets the number of segments of the longest path.
func (p *Paths) Depth() int {
	if p.Len() == 0 {
		return 0
	}
	return lo.Max(lo.Map(p.List(), func(path string, _ int) int {
		return segments(path)
	}))
}

// Len gets the number of included paths.
func (p *Paths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.set)
}

// List gets the sorted list of the included paths.
func (p *Paths) List() []string {
	if p == nil {
		return []string{}
	}
	list := lo.Keys(p.set)
	sort.Strings(list)
	return list
}

// Roots gets the sorted top level names of the included paths.
func (p *Paths) Roots() []string {
	return lo.Filter(p.List(), func(path string, _ int) bool {
		return !strings.Contains(path, Separator)
	})
}

// String implements fmt.Stringer interface. It is the JSON:API 'include' parameter form of the paths.
func (p *Paths) String() string {
	return strings.Join(p.List(), ",")
}

// Sub gets the paths nested under the relationship 'name', relative to it.
// i.e. for the paths: 'posts', 'posts.tags', 'posts.tags.owner' the Sub("posts") is 'tags', 'tags.owner'.
func (p *Paths) Sub(name string) *Paths {
	prefix := name + Separator
	sub := Empty()
	for _, path := range lo.Filter(p.List(), func(path string, _ int) bool { return strings.HasPrefix(path, prefix) }) {
		sub.set[strings.TrimPrefix(path, prefix)] = struct{}{}
	}
	return sub
}

// Join joins the 'parent' path with the relationship 'name'. An empty 'parent' is the root path.
func Join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Separator + name
}

// add adds the 'path' with all it's ancestors.
func (p *Paths) add(path string) {
	parts := strings.Split(path, Separator)
	for i := range parts {
		p.set[strings.Join(parts[:i+1], Separator)] = struct{}{}
	}
}

func segments(path string) int {
	return strings.Count(path, Separator) + 1
}
