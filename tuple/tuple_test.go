package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPair tests the key value pair.
func TestPair(t *testing.T) {
	p := NewPair("key", 3)
	assert.Equal(t, "key", p.Key())
	assert.Equal(t, 3, p.Value())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "Key", p.ItemName(0))
	assert.Equal(t, "Value", p.ItemName(1))
	assert.Equal(t, 3, p.Item(1))
	assert.Equal(t, NewPair("key", 3), p)
}

// TestTuples tests the two and three items tuples.
func TestTuples(t *testing.T) {
	var tp Tuple = NewThree(1, "two", 3.0)
	assert.Equal(t, 3, tp.Len())
	for i, expected := range []interface{}{1, "two", 3.0} {
		assert.Equal(t, expected, tp.Item(i))
	}
	assert.Equal(t, "Item3", tp.ItemName(2))
	assert.Nil(t, tp.Item(3))

	two := NewTwo(true, []int{1})
	assert.True(t, two.Item1())
	assert.Equal(t, []int{1}, two.Item2())
	assert.Equal(t, "Item1", two.ItemName(0))
}

// TestKeyValue tests the key value shape detection.
func TestKeyValue(t *testing.T) {
	var tp Tuple = NewPair(1, 2)
	_, ok := tp.(KeyValue)
	assert.True(t, ok)

	tp = NewTwo(1, 2)
	_, ok = tp.(KeyValue)
	assert.False(t, ok)
}
