package jsonapi

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/include"
	"github.com/neuronlabs/jsonapi-serializer/mapping"
)

// resourceKey is the resource identifier used to deduplicate the collected resources.
type resourceKey struct {
	typ, id string
}

// includedSet is the ordered set of the included resource objects. The first added resource wins.
type includedSet struct {
	seen  map[resourceKey]struct{}
	nodes []*Node
}

// add marks the 'key' as seen. Returns false if it was already seen.
func (s *includedSet) add(key resourceKey) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// reserve reserves the position of the next node. Nodes are ordered as they were first encountered
// even if their own included resources are collected before they are complete.
func (s *includedSet) reserve() int {
	s.nodes = append(s.nodes, nil)
	return len(s.nodes) - 1
}

// walkKey identifies the resource walked at the include path.
type walkKey struct {
	resourceKey
	path string
}

// collector is the per request resource collector.
type collector struct {
	*Serializer
	paths    *include.Paths
	included *includedSet
	memo     map[memoKey]interface{}
	walked   map[walkKey]struct{}
}

func (s *Serializer) newCollector(paths *include.Paths) *collector {
	return &collector{
		Serializer: s,
		paths:      paths,
		included:   &includedSet{seen: map[resourceKey]struct{}{}},
		memo:       map[memoKey]interface{}{},
		walked:     map[walkKey]struct{}{},
	}
}

// primary registers the primary resource so it is never added to the included resources.
func (c *collector) primary(s *mapping.Serializer, m mapping.Model) {
	key := resourceKey{typ: s.Type(), id: m.ID()}
	c.included.add(key)
	c.walked[walkKey{resourceKey: key, path: ""}] = struct{}{}
}

// node creates the resource object for the model 'm' serialized by 's' at the 'currentPath'.
func (c *collector) node(s *mapping.Serializer, m mapping.Model, currentPath string) (*Node, error) {
	attributes, err := c.attributes.Attributes(s, m)
	if err != nil {
		return nil, err
	}
	n := &Node{ID: m.ID(), Type: s.Type(), Attributes: attributes}
	if n.Relationships, err = c.collect(s, m, currentPath); err != nil {
		return nil, err
	}
	for _, r := range s.Relationships() {
		if _, ok := n.Relationships[r.Name()]; ok {
			n.order = append(n.order, r.Name())
		}
	}
	return n, nil
}

// collect creates the relationship objects of the model 'm' and collects the included resources.
func (c *collector) collect(s *mapping.Serializer, m mapping.Model, currentPath string) (map[string]*RelationshipObject, error) {
	relationships := map[string]*RelationshipObject{}
	for _, r := range s.Relationships() {
		resolved, err := c.resolve(s, r, m, currentPath)
		if err != nil {
			return nil, err
		}
		if resolved.omitted {
			continue
		}

		obj := &RelationshipObject{}
		if obj.Links, err = c.renderLinks(s, r, m); err != nil {
			return nil, err
		}
		if resolved.included {
			obj.HasData = true
			obj.Data = resolved.data()
			if err = c.includeTargets(resolved, include.Join(currentPath, r.Name())); err != nil {
				return nil, err
			}
		}
		relationships[r.Name()] = obj
	}
	return relationships, nil
}

func (c *collector) includeTargets(resolved *resolvedRelationship, path string) error {
	for _, t := range resolved.targets {
		if t.model == nil {
			continue
		}
		walk := walkKey{resourceKey: t.key(), path: path}
		if _, ok := c.walked[walk]; ok {
			continue
		}
		c.walked[walk] = struct{}{}

		if !c.included.add(walk.resourceKey) {
			// The first collected node wins. Its relationships are still walked at this path
			// so that the resources nested under it get included.
			logger.Debug3f("Resource: '%s/%s' already collected, walking: '%s'", t.serializer.Type(), t.model.ID(), path)
			if _, err := c.collect(t.serializer, t.model, path); err != nil {
				return err
			}
			continue
		}
		position := c.included.reserve()
		n, err := c.node(t.serializer, t.model, path)
		if err != nil {
			return err
		}
		c.included.nodes[position] = n
	}
	return nil
}

func (c *collector) renderLinks(s *mapping.Serializer, r *mapping.Relationship, m mapping.Model) (Links, error) {
	if !r.HasLinks() {
		return nil, nil
	}
	links := Links{}
	for _, template := range r.Links() {
		link, err := c.links.RenderLink(template, m)
		if err != nil {
			return nil, errors.WrapDetf(err, ClassInvocation, "rendering: '%s' relationship: '%s' link: '%s'", s.Type(), r.Name(), template.Relation)
		}
		links[template.Relation] = link
	}
	return links, nil
}
