package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// TestDefault tests the default configuration values.
func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "lower_camel", c.NamingConvention)
	assert.Equal(t, 2, c.Indent)
	assert.Equal(t, 1, c.ReferenceBase)
	assert.Equal(t, ".xml", c.FileExtension)
}

// TestReadConfigFile tests reading the config from the file.
func TestReadConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/configs/xgraph.yaml", []byte("naming_convention: snake\nindent: 4\n"), 0644))

		c, err := ReadConfigFile(fs, "/configs/xgraph.yaml")
		require.NoError(t, err)

		assert.Equal(t, "snake", c.NamingConvention)
		assert.Equal(t, 4, c.Indent)
		// defaults
		assert.Equal(t, 1, c.ReferenceBase)
		assert.Equal(t, "info", c.LogLevel)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/configs/invalid.yaml", []byte("naming_convention: pascal\n"), 0644))

		_, err := ReadConfigFile(fs, "/configs/invalid.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadConfigFile(fs, "/configs/missing.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadFile))
	})
}

// TestFromViper tests decoding the config from the viper instance.
func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("indent", 0)
	v.Set("strict_properties", true)

	c, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Indent)
	assert.True(t, c.StrictProperties)
	assert.Equal(t, "lower_camel", c.NamingConvention)
}
