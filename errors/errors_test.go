package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/errors/class"
)

// TestError tests the error functions.
func TestError(t *testing.T) {
	message := "some testing message"
	first := New(class.SerializationParsing, message)
	second := Newf(class.SerializationParsing, "formatted: '%d'", 2)

	assert.Equal(t, "some testing message", first.Error())
	assert.Equal(t, "formatted: '2'", second.Error())

	assert.True(t, strings.HasPrefix(first.Operation, "github.com/neuronlabs/xgraph/errors.TestError#errors_test.go:"))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, class.SerializationParsing, first.Class())

	first.SetDetail("detail")
	first.WrapDetail("wrapped")
	assert.Equal(t, "wrapped detail", first.Detail)

	second.SetDetailf("This is %dnd detail.", 2)
	assert.Equal(t, "This is 2nd detail.", second.Detail)

	t.Run("Location", func(t *testing.T) {
		err := New(class.SerializationUnresolvedType, "unresolved").SetLocation(Location{File: "doc.xml", Line: 3, Column: 7})
		assert.Equal(t, "doc.xml:3:7: unresolved", err.Error())
		assert.True(t, Location{}.IsZero())
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := stderrors.New("cause")
		err := Wrap(class.CommonFileOpen, cause, "opening")
		assert.Equal(t, "opening: cause", err.Error())
		assert.True(t, stderrors.Is(err, cause))
	})
}

// TestIsClass tests the class checking functions.
func TestIsClass(t *testing.T) {
	err := New(class.SerializationNumberOverflow, "overflow")
	assert.True(t, IsClass(err, class.SerializationNumberOverflow))
	assert.False(t, IsClass(err, class.SerializationParsing))
	assert.False(t, IsClass(stderrors.New("plain"), class.SerializationParsing))
	assert.True(t, HasMajor(err, class.MjrSerialization))

	multi := MultiError{New(class.SerializationParsing, "a"), err}
	assert.True(t, IsClass(multi, class.SerializationNumberOverflow))
	require.Len(t, multi.ByClass(class.SerializationParsing), 1)
	assert.Equal(t, "a, overflow", multi.Error())

	assert.Nil(t, MultiError(nil).OrNil())
	assert.NotNil(t, multi.OrNil())
}
