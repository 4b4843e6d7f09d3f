package mapping

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MnrDeclaration is the config minor error classification for the invalid serializer declarations.
	MnrDeclaration errors.Minor
	// ClassUnknownKind is the error classification for the relationships with unknown kind.
	ClassUnknownKind errors.Class
	// ClassInvalidName is the error classification for the empty or invalid relationship or type names.
	ClassInvalidName errors.Class
	// ClassRelationshipNotFound is the error classification when the declaration references undeclared relationship.
	ClassRelationshipNotFound errors.Class
	// ClassInvalidLink is the error classification for the link templates of unsupported type.
	ClassInvalidLink errors.Class
	// ClassInvalidSource is the error classification for the nil loaders and inline blocks.
	ClassInvalidSource errors.Class

	// MnrRegistry is the config minor error classification for the serializer registry.
	MnrRegistry errors.Minor
	// ClassDuplicateSerializer is the error classification for registering the same resource type twice.
	ClassDuplicateSerializer errors.Class
	// ClassSerializerNotFound is the error classification for not registered serializers.
	ClassSerializerNotFound errors.Class

	// MnrModel is the invocation minor error classification for the model reads.
	MnrModel errors.Minor
	// ClassAttributeNotFound is the error classification when the model doesn't have requested attribute.
	ClassAttributeNotFound errors.Class
	// ClassInvalidModel is the error classification for the values that could not be adapted as models.
	ClassInvalidModel errors.Class
)

func init() {
	MnrDeclaration = errors.MjrConfig.MustRegisterMinor("Declaration", "invalid serializer declarations")
	ClassUnknownKind = MnrDeclaration.MustRegisterIndex("Unknown Kind", "unknown relationship kind").Class()
	ClassInvalidName = MnrDeclaration.MustRegisterIndex("Invalid Name", "empty or invalid name").Class()
	ClassRelationshipNotFound = MnrDeclaration.MustRegisterIndex("Relationship Not Found", "relationship is not declared").Class()
	ClassInvalidLink = MnrDeclaration.MustRegisterIndex("Invalid Link", "unsupported link template").Class()
	ClassInvalidSource = MnrDeclaration.MustRegisterIndex("Invalid Source", "nil loader or inline block").Class()

	MnrRegistry = errors.MjrConfig.MustRegisterMinor("Registry", "serializer registry issues")
	ClassDuplicateSerializer = MnrRegistry.MustRegisterIndex("Duplicate Serializer", "serializer already registered").Class()
	ClassSerializerNotFound = MnrRegistry.MustRegisterIndex("Serializer Not Found", "serializer is not registered").Class()

	MnrModel = errors.MjrInvocation.MustRegisterMinor("Model", "model read failures")
	ClassAttributeNotFound = MnrModel.MustRegisterIndex("Attribute Not Found", "model has no such attribute").Class()
	ClassInvalidModel = MnrModel.MustRegisterIndex("Invalid Model", "value is not a valid model").Class()
}
