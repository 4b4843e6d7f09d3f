/*
Package mapping contains the serializer definitions used by the jsonapi encoding.

A serializer definition describes the resource type, its attributes and the ordered list of the relationships.
The definitions are created with the Builder and are immutable once built:

	authors, err := mapping.NewBuilder("authors").
		Attributes("name").
		HasMany("posts", mapping.WithLink("related", "/authors/1/posts")).
		HasOne("bio", mapping.WithLoader(loadBio)).
		Build()

A definition might be extended by another resource type. The extending builder starts with the copy of the
parent's relationships and any redeclaration overrides the parent's one, keeping its position.

The domain objects are provided to the serializers as the Model implementations. The Struct function adapts
any struct pointer and the Object is the map based Model.
*/
package mapping
