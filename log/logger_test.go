package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-serializer/errors"
)

func resetLogger(t *testing.T) {
	t.Helper()
	std.lock.Lock()
	prevOut, prevLevel := std.out, std.level
	std.lock.Unlock()
	t.Cleanup(func() {
		std.lock.Lock()
		std.out, std.level = prevOut, prevLevel
		std.lock.Unlock()
	})
}

// TestLogger tests the default logger facade.
func TestLogger(t *testing.T) {
	t.Run("Levels", func(t *testing.T) {
		resetLogger(t)

		buf := &bytes.Buffer{}
		New(buf, "", 0)
		require.NoError(t, SetLevel(LINFO))

		Debugf("hidden debug message")
		Infof("visible info: %d", 1)
		assert.NotContains(t, buf.String(), "hidden debug message")
		assert.Contains(t, buf.String(), "visible info: 1")

		buf.Reset()
		require.NoError(t, SetLevel(LDEBUG))
		Debugf("shown debug message")
		assert.Contains(t, buf.String(), "shown debug message")
		assert.Equal(t, LDEBUG, Level())
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		resetLogger(t)

		err := SetLevel(LUNKNOWN)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassUnknownLevel))
	})

	t.Run("NoLogger", func(t *testing.T) {
		resetLogger(t)
		std.lock.Lock()
		std.out = nil
		std.lock.Unlock()

		assert.NotPanics(t, func() {
			Debugf("nothing")
			Debug3f("nothing")
			Errorf("nothing")
		})
	})
}

// TestParseLevel tests parsing the level names.
func TestParseLevel(t *testing.T) {
	for name, expected := range map[string]interface{}{
		"debug3":   LDEBUG3,
		"Debug2":   LDEBUG2,
		"INFO":     LINFO,
		" error ":  LERROR,
		"critical": LCRITICAL,
	} {
		lvl, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, lvl, name)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, ClassUnknownLevel))
}

// TestModuleLogger tests the module logger prefixing and level filtering.
func TestModuleLogger(t *testing.T) {
	resetLogger(t)

	buf := &bytes.Buffer{}
	New(buf, "", 0)
	require.NoError(t, SetLevel(LDEBUG))

	m := NewModuleLogger("testing")
	m.Debugf("resolving: %s", "tags")
	assert.Contains(t, buf.String(), "[testing] resolving: tags")

	buf.Reset()
	m.Debug3f("too verbose")
	assert.Empty(t, buf.String())

	m.SetLevel(LWARNING)
	m.Infof("skipped")
	m.Warningf("warned")
	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "[testing] warned")

	t.Run("FollowsSetLevel", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, SetLevel(LDEBUG3))
		assert.Equal(t, LDEBUG3, m.Level())

		m.Debug3f("deep: %d", 3)
		assert.Contains(t, buf.String(), "[testing] deep: 3")
	})
}
