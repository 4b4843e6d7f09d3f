package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/namer"
)

// TestDefault tests the default config values.
func TestDefault(t *testing.T) {
	var c *Serializer
	require.NotPanics(t, func() {
		c = Default()
	})
	require.NotNil(t, c)

	assert.Equal(t, "snake", c.NamingConvention)
	assert.Equal(t, 8, c.MaxIncludeDepth)
	assert.False(t, c.ViaIncludeParam)
	assert.False(t, c.StrictIncludes)
	assert.NoError(t, c.Validate())
}

// TestNaming tests parsing the config naming convention.
func TestNaming(t *testing.T) {
	c := Default()
	c.NamingConvention = "kebab"

	n, err := c.Naming()
	require.NoError(t, err)
	assert.Equal(t, namer.KebabCase, n)
	assert.Equal(t, "blog-posts", n.Collection("BlogPost"))

	c.NamingConvention = "pascal"
	_, err = c.Naming()
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, ClassInvalidValue))
}

// TestValidate tests the config validation.
func TestValidate(t *testing.T) {
	tests := map[string]func(c *Serializer){
		"NamingConvention": func(c *Serializer) { c.NamingConvention = "pascal" },
		"ZeroDepth":        func(c *Serializer) { c.MaxIncludeDepth = 0 },
		"TooDeep":          func(c *Serializer) { c.MaxIncludeDepth = 65 },
		"BaseURL":          func(c *Serializer) { c.BaseURL = "not an url" },
		"LogLevel":         func(c *Serializer) { c.LogLevel = "verbose" },
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			modify(c)

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, ClassInvalidValue))
			assert.True(t, errors.IsConfiguration(err))
		})
	}

	t.Run("Multiple", func(t *testing.T) {
		c := Default()
		c.MaxIncludeDepth = 0
		c.LogLevel = "verbose"

		err := c.Validate()
		require.Error(t, err)

		var multi errors.MultiError
		require.True(t, errors.As(err, &multi))
		assert.Len(t, multi, 2)
		assert.Contains(t, err.Error(), "MaxIncludeDepth")
	})

	t.Run("Nil", func(t *testing.T) {
		var c *Serializer
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassNilValue))
	})
}

// TestReadConfig tests reading the config file.
func TestReadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "serializer-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "serializer.yaml")
		content := []byte("naming_convention: kebab\nvia_include_param: true\nbase_url: https://api.example.com\n")
		require.NoError(t, ioutil.WriteFile(path, content, 0644))

		c, err := ReadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "kebab", c.NamingConvention)
		assert.True(t, c.ViaIncludeParam)
		assert.Equal(t, "https://api.example.com", c.BaseURL)
		// default values
		assert.Equal(t, 8, c.MaxIncludeDepth)
		assert.Equal(t, "info", c.LogLevel)
	})

	t.Run("Invalid", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("max_include_depth: 100\n"), 0644))

		_, err := ReadConfig(path)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassInvalidValue))
	})

	t.Run("Environment", func(t *testing.T) {
		path := filepath.Join(dir, "env.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("max_include_depth: 4\n"), 0644))
		t.Setenv("JSONAPI_MAX_INCLUDE_DEPTH", "2")
		t.Setenv("JSONAPI_STRICT_INCLUDES", "true")

		c, err := ReadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2, c.MaxIncludeDepth)
		assert.True(t, c.StrictIncludes)
	})

	t.Run("Named", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "configs", "named.yaml"), []byte("strict_includes: true\n"), 0644))
		require.NoError(t, os.Chdir(dir))
		defer os.Chdir(wd)

		c, err := ReadNamedConfig("named")
		require.NoError(t, err)
		assert.True(t, c.StrictIncludes)
		assert.Equal(t, "snake", c.NamingConvention)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadConfig(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassReadFailed))
	})
}
