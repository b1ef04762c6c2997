package contract

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/tuple"
)

// TestSharedReference tests writing the shared object once and referencing it afterwards.
func TestSharedReference(t *testing.T) {
	e := testEngine(t)
	a := &A{Value: 42}

	first, second, read := roundTrip(t, e, Root{AProp: a, BProp: a})
	expected := `<root type="contract.Root">
  <aProp type="*contract.A" id="1">
    <value>42</value>
  </aProp>
  <bProp ref="1"/>
</root>
`
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)

	root, ok := read.Interface().(Root)
	require.True(t, ok)
	require.NotNil(t, root.AProp)
	assert.Same(t, root.AProp, root.BProp)
	assert.Equal(t, 42, root.AProp.Value)
	assert.NotSame(t, a, root.AProp)
}

// TestCycles tests round trip of the cyclic object graph.
func TestCycles(t *testing.T) {
	e := testEngine(t)
	n1 := &node{Name: "a"}
	n2 := &node{Name: "b", Parent: n1}
	n1.Next, n2.Next = n2, n1

	first, second, read := roundTrip(t, e, n1)
	expected := `<node type="*contract.node" id="1">
  <name>a</name>
  <next type="*contract.node" id="2">
    <name>b</name>
    <next ref="1"/>
    <parent ref="1"/>
  </next>
  <parent null="true"/>
</node>
`
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)

	root := read.Interface().(*node)
	require.NotNil(t, root.Next)
	assert.Equal(t, "b", root.Next.Name)
	assert.Same(t, root, root.Next.Next)
	assert.Same(t, root, root.Next.Parent)
	assert.Nil(t, root.Parent)
}

// TestReferenceBase tests the configurable first reference id.
func TestReferenceBase(t *testing.T) {
	e := testEngine(t)
	e.ReferenceBase = 10
	a := &A{Value: 1}

	root, errs := e.Serialize(&Root{AProp: a, BProp: a})
	require.Empty(t, errs)
	id, _ := root.Attr(document.AttrID)
	assert.Equal(t, "10", id)
	ref, _ := root.Child("bProp").Attr(document.AttrRef)
	assert.Equal(t, "11", ref)

	read, errs := e.Deserialize(root, reflect.TypeOf(&Root{}))
	require.Empty(t, errs)
	r := read.Interface().(*Root)
	assert.Same(t, r.AProp, r.BProp)
}

// TestScalars tests round trip of the scalar and nullable values.
func TestScalars(t *testing.T) {
	e := testEngine(t)
	limit := 10
	deadline := time.Date(2021, 3, 4, 5, 6, 7, 8, time.UTC)
	v := &scalars{
		Text:     "  spaced <text> & more ",
		Flag:     true,
		Small:    -8,
		Count:    4000000000,
		Ratio:    0.125,
		Data:     []byte{0, 1, 2, 255},
		At:       time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)),
		Timeout:  90 * time.Second,
		Level:    high,
		Limit:    &limit,
		Deadline: &deadline,
	}

	first, second, read := roundTrip(t, e, v)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `<level type="contract.level">`)
	assert.Contains(t, first, `<Value>High</Value>`)
	assert.Contains(t, first, `<limit type="*int">`)
	assert.Contains(t, first, `<timeout>1m30s</timeout>`)
	assert.Contains(t, first, `<missing null="true"/>`)

	result := read.Interface().(*scalars)
	assert.Equal(t, v.Text, result.Text)
	assert.Equal(t, v.Flag, result.Flag)
	assert.Equal(t, v.Small, result.Small)
	assert.Equal(t, v.Count, result.Count)
	assert.Equal(t, v.Ratio, result.Ratio)
	assert.Equal(t, v.Data, result.Data)
	assert.True(t, v.At.Equal(result.At))
	assert.Equal(t, v.Timeout, result.Timeout)
	assert.Equal(t, high, result.Level)
	require.NotNil(t, result.Limit)
	assert.Equal(t, 10, *result.Limit)
	require.NotNil(t, result.Deadline)
	assert.True(t, deadline.Equal(*result.Deadline))
	assert.Nil(t, result.Missing)
}

// TestEnumMembers tests the enum symbolic names.
func TestEnumMembers(t *testing.T) {
	e := testEngine(t)
	for _, l := range []level{low, medium, high} {
		root, errs := e.Serialize(l)
		require.Empty(t, errs)
		assert.Equal(t, l.String(), root.Child(ValueElement).Text)

		read, errs := e.Deserialize(root, reflect.TypeOf(l))
		require.Empty(t, errs)
		assert.Equal(t, l, read.Interface())
	}
}

// TestShapes tests round trip of the tuples and collections.
func TestShapes(t *testing.T) {
	e := testEngine(t)
	a := &A{Value: 3}
	v := &shapes{
		Triple: tuple.NewThree(true, 2, a),
		Tags:   []string{"first", "second"},
		Grid:   [2]int{4, 5},
		Scores: map[string]int{"b": 2, "a": 1, "c": 3},
		Items:  []*A{a, {Value: 4}, nil},
		Nested: map[int][]string{2: {"x"}, 1: nil},
		Empty:  []string{},
	}
	v.Point = tuple.NewTwo(7, "seven")
	v.Entry = tuple.NewPair("key", medium)

	first, second, read := roundTrip(t, e, v)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `<tag>first</tag>`)
	assert.Contains(t, first, `<empty/>`)
	assert.Contains(t, first, `<nil null="true"/>`)

	result := read.Interface().(*shapes)
	assert.Equal(t, 7, result.Point.Item1())
	assert.Equal(t, "seven", result.Point.Item2())
	assert.Equal(t, "key", result.Entry.Key())
	assert.Equal(t, medium, result.Entry.Value())
	assert.Equal(t, v.Tags, result.Tags)
	assert.Equal(t, v.Grid, result.Grid)
	assert.Equal(t, v.Scores, result.Scores)
	assert.Equal(t, []string{"x"}, result.Nested[2])
	assert.Nil(t, result.Nested[1])
	assert.NotNil(t, result.Empty)
	assert.Nil(t, result.Nil)

	require.Len(t, result.Items, 3)
	assert.Same(t, result.Triple.Item3(), result.Items[0])
	assert.Equal(t, 4, result.Items[1].Value)
	assert.Nil(t, result.Items[2])
}

// TestReadErrors tests the errors recorded while reading malformed documents.
func TestReadErrors(t *testing.T) {
	e := testEngine(t)

	read := func(t *testing.T, text string, declared reflect.Type) (reflect.Value, errors.MultiError) {
		t.Helper()
		root, err := document.Unmarshal([]byte(text), "test.xml")
		require.NoError(t, err)
		return e.Deserialize(root, declared)
	}

	t.Run("InvalidReference", func(t *testing.T) {
		v, errs := read(t, "<root type=\"contract.Root\">\n  <aProp ref=\"x\"/>\n  <bProp ref=\"9\"/>\n</root>", reflect.TypeOf(Root{}))
		require.Len(t, errs, 2)
		assert.True(t, errors.IsClass(errs[0], class.SerializationParsing))
		assert.Equal(t, 2, errs[0].Location.Line)
		assert.True(t, errors.IsClass(errs[1], class.SerializationReferenceUnknown))
		assert.Equal(t, 3, errs[1].Location.Line)

		root := v.Interface().(Root)
		assert.Nil(t, root.AProp)
		assert.Nil(t, root.BProp)
	})

	t.Run("UnresolvedRoot", func(t *testing.T) {
		v, errs := read(t, `<root type="contract.Unknown"/>`, nil)
		assert.False(t, v.IsValid())
		require.Len(t, errs, 1)
		assert.True(t, errors.IsClass(errs[0], class.SerializationUnresolvedType))
	})

	t.Run("MissingRootType", func(t *testing.T) {
		v, errs := read(t, `<root/>`, nil)
		assert.False(t, v.IsValid())
		assert.True(t, errors.IsClass(errs, class.SerializationMissingAttribute))
	})

	t.Run("Overflow", func(t *testing.T) {
		v, errs := read(t, `<scalars type="*contract.scalars"><small>300</small><count>-1</count><text>ok</text></scalars>`, reflect.TypeOf(&scalars{}))
		require.Len(t, errs, 2)
		assert.True(t, errors.IsClass(errs[0], class.SerializationNumberOverflow))
		assert.True(t, errors.IsClass(errs[1], class.SerializationParsing))
		assert.Equal(t, "ok", v.Interface().(*scalars).Text)
	})

	t.Run("UnknownEnum", func(t *testing.T) {
		v, errs := read(t, `<scalars type="*contract.scalars"><level type="contract.level"><Value>Extreme</Value></level></scalars>`, reflect.TypeOf(&scalars{}))
		require.Len(t, errs, 1)
		assert.True(t, errors.IsClass(errs[0], class.SerializationParsing))
		assert.Equal(t, level(0), v.Interface().(*scalars).Level)
	})

	t.Run("UnknownElement", func(t *testing.T) {
		v, errs := read(t, `<a type="*contract.A"><value>1</value><removed>2</removed></a>`, reflect.TypeOf(&A{}))
		assert.Empty(t, errs)
		assert.Equal(t, 1, v.Interface().(*A).Value)

		e.StrictProperties = true
		defer func() { e.StrictProperties = false }()
		_, errs = read(t, `<a type="*contract.A"><value>1</value><removed>2</removed></a>`, reflect.TypeOf(&A{}))
		require.Len(t, errs, 1)
		assert.True(t, errors.IsClass(errs[0], class.MappingPropertyNotFound))
	})

	t.Run("UnknownElementDefinesReference", func(t *testing.T) {
		v, errs := read(t, `<root type="contract.Root"><old type="*contract.A" id="1"><value>5</value></old><bProp ref="1"/></root>`, reflect.TypeOf(Root{}))
		require.Empty(t, errs)
		root := v.Interface().(Root)
		require.NotNil(t, root.BProp)
		assert.Equal(t, 5, root.BProp.Value)
	})
}

type failing struct{ Base }

func (failing) Name() string {
	return "failing"
}

func (failing) Hidden() bool {
	return true
}

func (failing) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

func (failing) Write(Match, reflect.Value, *document.Element, *Session) error {
	panic("broken writer")
}

type partial struct {
	Name   string
	Broken int `xgraph:"contract=failing"`
}

type misordered struct {
	Value int `xgraph:"order=first"`
}

type misorderedHolder struct {
	A *misordered
	B *misordered
}

// TestWriteErrors tests the errors recorded while writing unsupported values.
func TestWriteErrors(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.Registry.Register(failing{}))

	root, errs := e.Serialize(&partial{Name: "kept", Broken: 1})
	require.Len(t, errs, 1)
	assert.True(t, errors.IsClass(errs, class.SerializationInternal))

	require.NotNil(t, root)
	assert.NotNil(t, root.Child("name"))
	assert.Nil(t, root.Child("broken"))

	_, errs = e.Serialize(nil)
	assert.True(t, errors.IsClass(errs, class.SerializationWriteUnsupported))

	t.Run("Unregistered", func(t *testing.T) {
		m := &misordered{Value: 1}
		root, errs := e.Serialize(&misorderedHolder{A: m, B: m})
		require.Len(t, errs, 2)
		assert.True(t, errors.IsClass(errs, class.MappingPropertyValue))

		require.NotNil(t, root)
		assert.Nil(t, root.Child("a"))
		assert.Nil(t, root.Child("b"))
		root.Walk(func(e *document.Element) bool {
			assert.False(t, e.HasAttr(document.AttrRef), e.Name)
			return true
		})
	})
}
