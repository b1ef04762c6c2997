package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClass tests the error classification system.
func TestClass(t *testing.T) {
	registry.reset()
	defer registerClasses()
	defer registry.reset()

	t.Run("RegisterMajor", func(t *testing.T) {
		defer registry.reset()

		m, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)
		assert.Equal(t, uint8(1), uint8(m))

		m, err = RegisterMajor("TestingMajor2", "second")
		require.NoError(t, err)
		assert.Equal(t, uint8(2), uint8(m))
		assert.Equal(t, "TestingMajor2", m.Name())
		assert.Equal(t, "second", m.Description())
	})

	t.Run("DuplicatedMajor", func(t *testing.T) {
		defer registry.reset()

		_, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		_, err = RegisterMajor("TestingMajor")
		require.Error(t, err)
	})

	t.Run("Composition", func(t *testing.T) {
		defer registry.reset()

		m := MustRegisterMajor("Major")
		minor := m.MustRegisterMinor("Minor", "minor description")
		_, err := m.RegisterMinor("Minor")
		require.Error(t, err)

		index := minor.MustRegisterIndex("Some Index")
		second := minor.MustRegisterIndex("Other")

		c := index.Class()
		assert.Equal(t, m, c.Major())
		assert.Equal(t, minor, c.Minor())
		assert.Equal(t, index, c.Index())
		assert.True(t, c.IsMajor(m))
		assert.True(t, c.IsMinor(minor))
		assert.Equal(t, "MajorMinorSomeIndex", c.String())
		assert.Equal(t, "minor description", minor.Description())

		assert.NotEqual(t, c, second.Class())
		assert.Equal(t, c.MjrMnrMasked(), second.Class().MjrMnrMasked())

		minorClass := MustNewMinorClass(minor)
		assert.Equal(t, "MajorMinor", minorClass.String())
		assert.Equal(t, uint16(0), minorClass.Index().value)
	})
}

// TestRegisteredClasses checks the package level classifications.
func TestRegisteredClasses(t *testing.T) {
	assert.Equal(t, "SerializationReadUnresolvedType", SerializationUnresolvedType.String())
	assert.True(t, SerializationParsing.IsMajor(MjrSerialization))
	assert.True(t, SerializationReferenceUnknown.IsMinor(MnrSerializationReference))
	assert.NotEqual(t, SerializationParsing, SerializationNumberOverflow)
}
