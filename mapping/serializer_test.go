package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

func relationshipNames(s *Serializer) []string {
	var names []string
	for _, r := range s.Relationships() {
		names = append(names, r.Name())
	}
	return names
}

// TestBuilder tests the serializer definition declarations.
func TestBuilder(t *testing.T) {
	t.Run("Declarations", func(t *testing.T) {
		loader := func() (interface{}, error) { return nil, nil }
		s, err := NewBuilder("posts").
			Attributes("title", "body", "title").
			HasOne("author", WithSerializer("people")).
			HasMany("tags", WithLink("related", "/posts/1/tags")).
			HasMany("comments", WithLoader(loader)).
			HasMany("locations", WithInline(func(Model) (interface{}, error) { return nil, nil })).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "posts", s.Type())
		assert.Equal(t, []string{"title", "body"}, s.Attributes())
		assert.Equal(t, []string{"author", "tags", "comments", "locations"}, relationshipNames(s))

		author, ok := s.Relationship("author")
		require.True(t, ok)
		assert.Equal(t, ToOne, author.Kind())
		assert.Equal(t, "people", author.SerializerType())
		assert.Equal(t, SourceAssociation, author.Source())
		assert.False(t, author.HasLinks())

		tags, _ := s.Relationship("tags")
		assert.Equal(t, "tags", tags.SerializerType())
		require.Len(t, tags.Links(), 1)
		assert.Equal(t, "/posts/1/tags", tags.Links()[0].Literal)

		comments, _ := s.Relationship("comments")
		assert.Equal(t, SourceLoader, comments.Source())
		assert.NotNil(t, comments.Loader())

		locations, _ := s.Relationship("locations")
		assert.Equal(t, SourceInline, locations.Source())
		assert.NotNil(t, locations.Inline())

		_, ok = s.Relationship("missing")
		assert.False(t, ok)
	})

	t.Run("DefaultSerializer", func(t *testing.T) {
		s := NewBuilder("authors").HasOne("blogPost").HasMany("person").MustBuild()

		post, _ := s.Relationship("blogPost")
		assert.Equal(t, "blog_posts", post.SerializerType())

		person, _ := s.Relationship("person")
		assert.Equal(t, "people", person.SerializerType())

		kebab := NewBuilder("authors").Naming(namer.KebabCase).HasOne("blogPost").MustBuild()
		post, _ = kebab.Relationship("blogPost")
		assert.Equal(t, "blog-posts", post.SerializerType())
	})

	t.Run("Redeclare", func(t *testing.T) {
		b := NewBuilder("posts").HasMany("tags").HasOne("author").HasMany("comments")
		require.NoError(t, b.DeclareRelationship("author", ToOne, WithSerializer("people")))
		require.NoError(t, b.DeclareRelationship("tags", ToOne))

		s, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"tags", "author", "comments"}, relationshipNames(s))

		author, _ := s.Relationship("author")
		assert.Equal(t, "people", author.SerializerType())

		tags, _ := s.Relationship("tags")
		assert.Equal(t, ToOne, tags.Kind())
	})

	t.Run("UnknownKind", func(t *testing.T) {
		b := NewBuilder("posts")
		err := b.DeclareRelationship("tags", Kind(12))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassUnknownKind))
		assert.True(t, errors.IsConfiguration(err))

		_, err = b.Build()
		assert.True(t, errors.IsClass(err, ClassUnknownKind))
	})

	t.Run("EmptyNames", func(t *testing.T) {
		_, err := NewBuilder("").Build()
		assert.True(t, errors.IsClass(err, ClassInvalidName))

		_, err = NewBuilder("posts").HasMany("").Build()
		assert.True(t, errors.IsClass(err, ClassInvalidName))

		_, err = NewBuilder("posts").Attributes("").Build()
		assert.True(t, errors.IsClass(err, ClassInvalidName))
	})

	t.Run("DeclareLink", func(t *testing.T) {
		b := NewBuilder("posts").HasMany("tags")

		require.NoError(t, b.DeclareLink("tags", "self", "/posts/1/relationships/tags"))
		require.NoError(t, b.DeclareLink("tags", "related", func(m Model) (string, error) {
			return "/posts/" + m.ID() + "/tags", nil
		}))
		require.NoError(t, b.DeclareLink("tags", "self", "/tags"))

		err := b.DeclareLink("comments", "self", "/comments")
		assert.True(t, errors.IsClass(err, ClassRelationshipNotFound))

		err = b.DeclareLink("tags", "self", 42)
		assert.True(t, errors.IsClass(err, ClassInvalidLink))
	})

	t.Run("DeclareLoader", func(t *testing.T) {
		b := NewBuilder("posts").HasMany("comments")
		require.NoError(t, b.DeclareLoader("comments", func() (interface{}, error) { return nil, nil }))

		s := b.MustBuild()
		comments, _ := s.Relationship("comments")
		assert.Equal(t, SourceLoader, comments.Source())

		err := NewBuilder("posts").DeclareLoader("comments", func() (interface{}, error) { return nil, nil })
		assert.True(t, errors.IsClass(err, ClassRelationshipNotFound))

		err = NewBuilder("posts").HasMany("comments").DeclareLoader("comments", nil)
		assert.True(t, errors.IsClass(err, ClassInvalidSource))
	})

	t.Run("ViaIncludeParam", func(t *testing.T) {
		s := NewBuilder("posts").MustBuild()
		assert.True(t, s.ViaIncludeParam(true))
		assert.False(t, s.ViaIncludeParam(false))

		s = NewBuilder("posts").ViaIncludeParam(true).MustBuild()
		assert.True(t, s.ViaIncludeParam(false))
	})
}

// TestExtend tests the serializer inheritance.
func TestExtend(t *testing.T) {
	parent := NewBuilder("posts").
		Attributes("title").
		ViaIncludeParam(true).
		HasMany("tags").
		HasOne("author").
		HasMany("comments", WithLink("related", "/comments")).
		MustBuild()

	b := parent.Extend("featured_posts").
		Attributes("rank").
		HasOne("author", WithSerializer("editors")).
		HasMany("sponsors")
	require.NoError(t, b.DeclareLink("comments", "self", "/featured/comments"))

	child, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "featured_posts", child.Type())
	assert.Equal(t, []string{"title", "rank"}, child.Attributes())
	assert.Equal(t, []string{"tags", "author", "comments", "sponsors"}, relationshipNames(child))
	assert.True(t, child.ViaIncludeParam(false))

	author, _ := child.Relationship("author")
	assert.Equal(t, "editors", author.SerializerType())

	comments, _ := child.Relationship("comments")
	assert.Len(t, comments.Links(), 2)

	// The parent definition is not changed.
	assert.Equal(t, []string{"title"}, parent.Attributes())
	assert.Equal(t, []string{"tags", "author", "comments"}, relationshipNames(parent))
	parentAuthor, _ := parent.Relationship("author")
	assert.Equal(t, "authors", parentAuthor.SerializerType())
	parentComments, _ := parent.Relationship("comments")
	assert.Len(t, parentComments.Links(), 1)
}
