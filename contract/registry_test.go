package contract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/mapping"
)

type mockContract struct {
	mock.Mock
	Base
	name   string
	hidden bool
}

func (m *mockContract) Name() string {
	return m.name
}

func (m *mockContract) Hidden() bool {
	return m.hidden
}

func (m *mockContract) CanManageType(t reflect.Type, _ *Session) Support {
	args := m.Called(t)
	return args.Get(0).(Support)
}

func (m *mockContract) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

func (m *mockContract) Write(Match, reflect.Value, *document.Element, *Session) error {
	return nil
}

// TestPriorityCompare tests the support priority ordering.
func TestPriorityCompare(t *testing.T) {
	attribute := Priority{Level: LevelAttribute}
	element := Priority{Level: LevelElement, Sub: 5}
	exact := Priority{Level: LevelType, Sub: SubExact}
	kind := Priority{Level: LevelType, Sub: SubKind}

	assert.True(t, attribute.Compare(element) > 0)
	assert.True(t, element.Compare(exact) > 0)
	assert.True(t, exact.Compare(kind) > 0)
	assert.True(t, kind.Compare(Priority{Level: LevelDefault, Sub: 10}) > 0)
	assert.Equal(t, 0, NotSupported.Compare(Priority{Sub: 3}))
	assert.False(t, NotSupported.Supported())
	assert.Equal(t, "Type(-1)", kind.String())
}

// TestRegistrySelect tests selecting the contract with the highest support.
func TestRegistrySelect(t *testing.T) {
	intType := reflect.TypeOf(0)

	t.Run("RegistrationOrder", func(t *testing.T) {
		first := &mockContract{name: "first"}
		second := &mockContract{name: "second"}
		for _, c := range []*mockContract{first, second} {
			c.On("CanManageType", intType).Return(Supports(LevelType, SubExact, Match{Type: intType}))
		}

		r := NewRegistry(first, second)
		s := testEngine(t).NewSession("")
		for i := 0; i < 10; i++ {
			selected, m := r.Select(Query{Type: intType}, s)
			require.NotNil(t, selected)
			assert.Equal(t, "first", selected.Name())
			assert.Equal(t, intType, m.Type)
		}
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("HigherPriority", func(t *testing.T) {
		general := &mockContract{name: "general"}
		general.On("CanManageType", intType).Return(Supports(LevelType, SubInterface, Match{}))
		specific := &mockContract{name: "specific"}
		specific.On("CanManageType", intType).Return(Supports(LevelType, SubExact, Match{}))
		none := &mockContract{name: "none"}
		none.On("CanManageType", intType).Return(NotSupported)

		r := NewRegistry(general, none, specific)
		selected, m := r.Select(Query{Type: intType, Declared: intType}, testEngine(t).NewSession(""))
		require.NotNil(t, selected)
		assert.Equal(t, "specific", selected.Name())
		assert.Equal(t, intType, m.Type)
		assert.Equal(t, intType, m.Declared)
	})

	t.Run("Hidden", func(t *testing.T) {
		hidden := &mockContract{name: "hidden", hidden: true}
		r := NewRegistry(hidden)

		selected, _ := r.Select(Query{Type: intType}, testEngine(t).NewSession(""))
		assert.Nil(t, selected)
		hidden.AssertNotCalled(t, "CanManageType", intType)
	})

	t.Run("Forced", func(t *testing.T) {
		hidden := &mockContract{name: "hidden", hidden: true}
		hidden.On("CanManageType", intType).Return(NotSupported)
		regular := &mockContract{name: "regular"}
		regular.On("CanManageType", intType).Return(Supports(LevelType, SubExact, Match{}))

		r := NewRegistry(regular, hidden)
		forcedStruct := reflect.TypeOf(struct {
			Value int `xgraph:"contract=hidden"`
		}{})
		described, err := mapping.NewMapper(mapping.NoNaming).Describe(forcedStruct)
		require.NoError(t, err)
		p, ok := described.Property("Value")
		require.True(t, ok)

		selected, m := r.Select(Query{Type: intType, Property: p}, testEngine(t).NewSession(""))
		require.NotNil(t, selected)
		assert.Equal(t, "hidden", selected.Name())
		assert.Equal(t, intType, m.Type)
		assert.Same(t, p, m.Property)
	})

	t.Run("Duplicated", func(t *testing.T) {
		r := NewRegistry(&mockContract{name: "one"})
		err := r.Register(&mockContract{name: "one"})
		require.Error(t, err)
		assert.Len(t, r.Contracts(), 1)
	})
}

// TestDefaultRegistry tests the contracts selected by the default registry.
func TestDefaultRegistry(t *testing.T) {
	e := testEngine(t)
	s := e.NewSession("")
	r := e.Registry

	tests := map[string]struct {
		query    Query
		expected string
	}{
		"Int":       {Query{Type: reflect.TypeOf(0)}, "Primitive"},
		"Bytes":     {Query{Type: reflect.TypeOf([]byte{})}, "Primitive"},
		"String":    {Query{Type: reflect.TypeOf("")}, "String"},
		"Enum":      {Query{Type: reflect.TypeOf(low)}, "Enum"},
		"Duration":  {Query{Type: durationType}, "TimeSpan"},
		"Time":      {Query{Type: timeType}, "DateTime"},
		"Struct":    {Query{Type: reflect.TypeOf(A{})}, "Object"},
		"UUID":      {Query{Type: reflect.TypeOf(identified{}.ID)}, "Slice"},
		"Nullable":  {Query{Type: reflect.TypeOf(new(int))}, "Nullable"},
		"Pair":      {Query{Type: reflect.TypeOf(shapes{}.Entry)}, "Pair"},
		"Tuple":     {Query{Type: reflect.TypeOf(shapes{}.Point)}, "Tuple"},
		"Slice":     {Query{Type: reflect.TypeOf([]*A{})}, "Slice"},
		"Map":       {Query{Type: reflect.TypeOf(map[string]int{})}, "Map"},
		"StructMap": {Query{Type: reflect.TypeOf(map[A]int{})}, ""},
		"Null":      {Query{Element: document.New("x").SetAttr(document.AttrNull, "true"), Type: reflect.TypeOf(&A{})}, "Null"},
		"Ref":       {Query{Element: document.New("x").SetAttr(document.AttrRef, "1"), Type: reflect.TypeOf(&A{})}, "Reference"},
		"Path":      {Query{Element: document.New("x").SetAttr(document.AttrPath, "a.xml")}, "External"},
		"RefPath":   {Query{Element: document.New("x").SetAttr(document.AttrPath, "a.xml").SetAttr(document.AttrRef, "1")}, "Reference"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			selected, _ := r.Select(tc.query, s)
			if tc.expected == "" {
				assert.Nil(t, selected)
				return
			}
			require.NotNil(t, selected)
			assert.Equal(t, tc.expected, selected.Name())
		})
	}
}
