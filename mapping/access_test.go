package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// TestPropertyAccess tests getting and setting the properties and fields.
func TestPropertyAccess(t *testing.T) {
	m := NewMapper(LowerCamelCase)
	s, err := m.Describe(reflect.TypeOf(account{}))
	require.NoError(t, err)

	a := &account{Name: "first", total: 4}
	a.Comment = "embedded"
	v := reflect.ValueOf(a)

	t.Run("Get", func(t *testing.T) {
		p, _ := s.Property("Comment")
		value, err := GetProperty(v, p)
		require.NoError(t, err)
		assert.Equal(t, "embedded", value.Interface())

		p, _ = s.Property("total")
		value, err = GetProperty(v, p)
		require.NoError(t, err)
		assert.Equal(t, 4, value.Interface())
	})

	t.Run("GetNonAddressable", func(t *testing.T) {
		p, _ := s.Property("total")
		value, err := GetProperty(reflect.ValueOf(*a), p)
		require.NoError(t, err)
		assert.Equal(t, 4, value.Interface())
	})

	t.Run("Set", func(t *testing.T) {
		p, _ := s.Property("total")
		require.NoError(t, SetProperty(v, p, reflect.ValueOf(10)))
		assert.Equal(t, 10, a.total)

		p, _ = s.Property("Name")
		err := SetProperty(v, p, reflect.ValueOf(10))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.MappingPropertyValue))
	})

	t.Run("SetNonAddressable", func(t *testing.T) {
		p, _ := s.Property("Name")
		err := SetProperty(reflect.ValueOf(*a), p, reflect.ValueOf("x"))
		require.Error(t, err)
	})

	t.Run("Field", func(t *testing.T) {
		require.NoError(t, SetField(v, "secret", reflect.ValueOf("s3cr3t")))
		assert.Equal(t, "s3cr3t", a.secret)

		value, err := GetField(v, "secret")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", value.Interface())

		_, err = GetField(v, "missing")
		assert.True(t, errors.IsClass(err, class.MappingPropertyNotFound))

		ft, err := FieldType(reflect.TypeOf(a), "synced")
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(0), ft)
	})

	t.Run("Method", func(t *testing.T) {
		a.total = 3
		require.NoError(t, CallMethod(v, "Recompute"))
		assert.Equal(t, 6, a.synced)

		err := CallMethod(v, "Missing")
		assert.True(t, errors.IsClass(err, class.MappingPropertyMethod))

		err = CallMethod(v, "String")
		assert.Error(t, err)
	})
}

// TestInstantiate tests creating the instances of the types.
func TestInstantiate(t *testing.T) {
	v, err := Instantiate(reflect.TypeOf(&account{}))
	require.NoError(t, err)
	assert.False(t, v.IsNil())

	v, err = Instantiate(reflect.TypeOf(account{}))
	require.NoError(t, err)
	assert.True(t, v.CanAddr())

	v, err = Instantiate(reflect.TypeOf(map[string]int{}))
	require.NoError(t, err)
	assert.False(t, v.IsNil())

	_, err = Instantiate(reflect.TypeOf((*interface{})(nil)).Elem())
	assert.True(t, errors.IsClass(err, class.SerializationInstantiate))
}
