package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElement tests the element tree manipulation methods.
func TestElement(t *testing.T) {
	root := New("root")
	root.SetAttr("b", "2").SetAttr("a", "1").SetAttr(AttrID, "3").SetAttr(AttrType, "pkg.Root")

	t.Run("AttrNames", func(t *testing.T) {
		assert.Equal(t, []string{AttrType, AttrID, "a", "b"}, root.AttrNames())
	})

	first := root.NewChild("item")
	second := root.NewChild("other")
	third := root.NewChild("item")

	t.Run("Children", func(t *testing.T) {
		assert.Equal(t, first, root.Child("item"))
		assert.Equal(t, []*Element{first, third}, root.ChildrenNamed("item"))
		assert.Nil(t, root.Child("missing"))

		assert.True(t, root.RemoveChild(second))
		assert.False(t, root.RemoveChild(second))
		assert.Len(t, root.Children, 2)
	})

	t.Run("Attr", func(t *testing.T) {
		v, ok := root.Attr("a")
		require.True(t, ok)
		assert.Equal(t, "1", v)

		root.RemoveAttr("a")
		assert.False(t, root.HasAttr("a"))

		_, ok = New("empty").Attr("a")
		assert.False(t, ok)
	})

	t.Run("CloneEqual", func(t *testing.T) {
		first.Text = "value"
		clone := root.Clone()
		assert.True(t, clone.Equal(root))
		assert.NotSame(t, root.Children[0], clone.Children[0])

		clone.Children[0].Text = "changed"
		assert.False(t, clone.Equal(root))
		assert.Equal(t, "value", first.Text)

		clone.Children[0].Text = "value"
		clone.SetAttr("extra", "x")
		assert.False(t, clone.Equal(root))
	})

	t.Run("Walk", func(t *testing.T) {
		var names []string
		root.Walk(func(e *Element) bool {
			names = append(names, e.Name)
			return true
		})
		assert.Equal(t, []string{"root", "item", "item"}, names)
	})
}
