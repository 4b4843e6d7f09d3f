package jsonapi

import (
	"sort"

	"github.com/samber/lo"
)

// Node is the JSON:API resource object.
type Node struct {
	ID            string
	Type          string
	Attributes    map[string]interface{}
	Relationships map[string]*RelationshipObject

	order []string
}

// RelationshipNames gets the names of the node relationships in the declaration order.
// The names of the relationships set directly on the node but not declared are appended in sorted order.
func (n *Node) RelationshipNames() []string {
	names := append([]string(nil), n.order...)
	var extra []string
	for name := range n.Relationships {
		if !lo.Contains(n.order, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Identifier gets the resource identifier of the node.
func (n *Node) Identifier() *Identifier {
	return &Identifier{ID: n.ID, Type: n.Type}
}

// Identifier is the JSON:API resource identifier object.
type Identifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Links is the relationship links object. The keys are the link relations i.e.: 'self', 'related'.
type Links map[string]string

// RelationshipObject is the JSON:API relationship object. The Data is present only if the relationship
// was included. For to-one relationships the Data is the *Identifier or nil, for the to-many it is
// the ordered []interface{} of the identifiers. The targets that are not models are stored verbatim.
type RelationshipObject struct {
	Links   Links
	Data    interface{}
	HasData bool
}

// Identifiers gets the resource identifiers of the relationship data.
func (r *RelationshipObject) Identifiers() []*Identifier {
	var identifiers []*Identifier
	switch data := r.Data.(type) {
	case *Identifier:
		identifiers = append(identifiers, data)
	case []interface{}:
		for _, elem := range data {
			if id, ok := elem.(*Identifier); ok {
				identifiers = append(identifiers, id)
			}
		}
	}
	return identifiers
}

func (r *RelationshipObject) document() map[string]interface{} {
	doc := map[string]interface{}{}
	if len(r.Links) > 0 {
		doc["links"] = r.Links
	}
	if r.HasData {
		doc["data"] = r.Data
	}
	return doc
}

func (n *Node) document() map[string]interface{} {
	attributes := n.Attributes
	if attributes == nil {
		attributes = map[string]interface{}{}
	}
	doc := map[string]interface{}{
		"id":         n.ID,
		"type":       n.Type,
		"attributes": attributes,
	}
	if len(n.Relationships) > 0 {
		relationships := make(map[string]interface{}, len(n.Relationships))
		for name, r := range n.Relationships {
			relationships[name] = r.document()
		}
		doc["relationships"] = relationships
	}
	return doc
}
