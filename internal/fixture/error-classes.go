package fixture

import (
	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var (
	// MnrFixture is the config minor error classification for the fixture documents.
	MnrFixture errors.Minor
	// ClassInvalidFixture is the error classification for malformed fixture documents.
	ClassInvalidFixture errors.Class
	// ClassObjectNotFound is the error classification for the references to not defined objects.
	ClassObjectNotFound errors.Class
)

func init() {
	MnrFixture = errors.MjrConfig.MustRegisterMinor("Fixture", "fixture document issues")
	ClassInvalidFixture = MnrFixture.MustRegisterIndex("Invalid", "malformed fixture document").Class()
	ClassObjectNotFound = MnrFixture.MustRegisterIndex("Object Not Found", "referenced object not defined").Class()
}
