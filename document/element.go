package document

import (
	"sort"
)

// Attribute names with the fixed position in the canonical attribute order.
const (
	AttrType = "type"
	AttrID   = "id"
	AttrRef  = "ref"
	AttrNull = "null"
	AttrPath = "path"
	AttrName = "name"
)

var attrOrder = map[string]int{
	AttrType: 1,
	AttrID:   2,
	AttrRef:  3,
	AttrNull: 4,
	AttrPath: 5,
}

// Element is an ordered tree node with a name, unordered attributes, ordered
// children and optional text content.
type Element struct {
	Name     string
	Attrs    map[string]string
	Children []*Element
	Text     string

	// Line and Column points to the element start in the decoded document.
	// Both are zero for the elements created in memory.
	Line   int
	Column int
}

// New creates new element with given 'name'.
func New(name string) *Element {
	return &Element{Name: name}
}

// Attr gets the attribute value.
func (e *Element) Attr(name string) (string, bool) {
	if e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// HasAttr checks if the element has the attribute 'name'.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the attribute 'name' with the 'value'.
func (e *Element) SetAttr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[name] = value
	return e
}

// RemoveAttr removes the attribute 'name'.
func (e *Element) RemoveAttr(name string) {
	delete(e.Attrs, name)
}

// AttrNames returns the attribute names in the canonical order. The well known attributes
// goes first: type, id, ref, null, path, the rest is sorted lexically.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, oj := attrOrder[names[i]], attrOrder[names[j]]
		switch {
		case oi != 0 && oj != 0:
			return oi < oj
		case oi != 0:
			return true
		case oj != 0:
			return false
		}
		return names[i] < names[j]
	})
	return names
}

// Child gets the first child element with given 'name'.
func (e *Element) Child(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildrenNamed gets all children with given 'name'.
func (e *Element) ChildrenNamed(name string) []*Element {
	var children []*Element
	for _, child := range e.Children {
		if child.Name == name {
			children = append(children, child)
		}
	}
	return children
}

// AddChild appends the 'child' element.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// NewChild creates and appends new child element with given 'name'.
func (e *Element) NewChild(name string) *Element {
	return e.AddChild(New(name))
}

// RemoveChild removes the 'child' from the element children.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			return true
		}
	}
	return false
}

// IsEmpty checks if the element has no attributes, children and text.
func (e *Element) IsEmpty() bool {
	return len(e.Attrs) == 0 && len(e.Children) == 0 && e.Text == ""
}

// Clone creates a deep copy of the element tree. Source positions are copied as well.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{Name: e.Name, Text: e.Text, Line: e.Line, Column: e.Column}
	if e.Attrs != nil {
		c.Attrs = make(map[string]string, len(e.Attrs))
		for k, v := range e.Attrs {
			c.Attrs[k] = v
		}
	}
	if e.Children != nil {
		c.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Equal checks if both trees have equal names, attributes, text and children.
// Source positions are not compared.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Name != other.Name || e.Text != other.Text || len(e.Attrs) != len(other.Attrs) || len(e.Children) != len(other.Children) {
		return false
	}
	for k, v := range e.Attrs {
		if ov, ok := other.Attrs[k]; !ok || ov != v {
			return false
		}
	}
	for i, child := range e.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits the element and all its descendants in the document order.
// If 'fn' returns false the descendants of given element are not visited.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}
