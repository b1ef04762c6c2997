package contract

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/tuple"
)

type A struct {
	Value int
}

type Root struct {
	AProp *A
	BProp *A
}

type node struct {
	Name   string
	Next   *node
	Parent *node
}

type level int

const (
	low level = iota + 5
	medium
	high
)

func (l level) String() string {
	switch l {
	case low:
		return "Low"
	case medium:
		return "Medium"
	case high:
		return "High"
	}
	return "Unknown"
}

type scalars struct {
	Text     string
	Flag     bool
	Small    int8
	Count    uint32
	Ratio    float64
	Data     []byte
	At       time.Time
	Timeout  time.Duration
	Level    level
	Limit    *int
	Deadline *time.Time
	Missing  *float64
}

type shapes struct {
	Point  tuple.Two[int, string]
	Triple tuple.Three[bool, int, *A]
	Entry  tuple.Pair[string, level]
	Tags   []string
	Grid   [2]int
	Scores map[string]int
	Items  []*A
	Nested map[int][]string
	Empty  []string
	Nil    []string
}

type invoice struct {
	Total    int `xgraph:"field=sum;sync=Recompute"`
	Computed int `xgraph:"readonly"`
	Cache    string `xgraph:"writeonly"`
	Created  time.Time `xgraph:"order=-1"`
	Label    string `xgraph:"name=title;order=1"`
	sum      int
	derived  int
}

func (i *invoice) Recompute() {
	i.derived = i.sum * 10
	i.Total = i.sum
}

type derivedOwner struct {
	Derived *A `xgraph:"readonly"`
	Later   *A
}

type identified struct {
	ID    uuid.UUID `xgraph:"name=id;contract=Text"`
	Items []interface{}
	Any   interface{}
}

type document1 struct {
	Title string
	Ref   *library
	Other *library
}

type library struct {
	Name string
	path string
}

func (l *library) ExternalPath() string {
	return l.path
}

func (l *library) SetExternalPath(path string) {
	l.path = path
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(nil)
	require.NoError(t, err)
	e.Fs = afero.NewMemMapFs()
	_, err = e.Types.RegisterEnum(low, medium, high)
	require.NoError(t, err)
	return e
}

func marshal(t *testing.T, e *document.Element) string {
	t.Helper()

	data, err := document.Marshal(e, 2)
	require.NoError(t, err)
	return string(data)
}

// roundTrip writes the 'v', reads it back as 'declared' type and writes it again.
func roundTrip(t *testing.T, e *Engine, v interface{}) (first, second string, read reflect.Value) {
	t.Helper()

	root, errs := e.Serialize(v)
	require.Empty(t, errs)
	first = marshal(t, root)

	parsed, err := document.Unmarshal([]byte(first), "")
	require.NoError(t, err)

	read, errs = e.Deserialize(parsed, reflect.TypeOf(v))
	require.Empty(t, errs, strings.TrimSpace(first))
	require.True(t, read.IsValid())

	root, errs = e.Serialize(read.Interface())
	require.Empty(t, errs)
	second = marshal(t, root)
	return first, second, read
}
