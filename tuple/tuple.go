// Package tuple contains immutable tuple shapes: key value Pair and the Two and Three
// item tuples. The tuple components are set only on construction.
package tuple

import (
	"strconv"
)

// Tuple is the interface implemented by all the tuple shapes.
// The i'th component is stored in the i'th struct field.
type Tuple interface {
	// Len gets the number of the tuple components.
	Len() int
	// Item gets the i'th component.
	Item(i int) interface{}
	// ItemName gets the document element name of the i'th component.
	ItemName(i int) string
}

// KeyValue is the interface implemented only by the Pair.
type KeyValue interface {
	Tuple
	keyValue()
}

// Pair is the key value pair.
type Pair[K, V any] struct {
	key   K
	value V
}

// NewPair creates new key value pair.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, value: value}
}

// Key gets the pair key.
func (p Pair[K, V]) Key() K {
	return p.key
}

// Value gets the pair value.
func (p Pair[K, V]) Value() V {
	return p.value
}

func (p Pair[K, V]) keyValue() {}

// Len implements Tuple interface.
func (p Pair[K, V]) Len() int {
	return 2
}

// Item implements Tuple interface.
func (p Pair[K, V]) Item(i int) interface{} {
	switch i {
	case 0:
		return p.key
	case 1:
		return p.value
	}
	return nil
}

// ItemName implements Tuple interface.
func (p Pair[K, V]) ItemName(i int) string {
	if i == 0 {
		return "Key"
	}
	return "Value"
}

// Two is the two item tuple.
type Two[A, B any] struct {
	item1 A
	item2 B
}

// NewTwo creates new two item tuple.
func NewTwo[A, B any](item1 A, item2 B) Two[A, B] {
	return Two[A, B]{item1: item1, item2: item2}
}

// Item1 gets the first item.
func (t Two[A, B]) Item1() A {
	return t.item1
}

// Item2 gets the second item.
func (t Two[A, B]) Item2() B {
	return t.item2
}

// Len implements Tuple interface.
func (t Two[A, B]) Len() int {
	return 2
}

// Item implements Tuple interface.
func (t Two[A, B]) Item(i int) interface{} {
	switch i {
	case 0:
		return t.item1
	case 1:
		return t.item2
	}
	return nil
}

// ItemName implements Tuple interface.
func (t Two[A, B]) ItemName(i int) string {
	return itemName(i)
}

// Three is the three item tuple.
type Three[A, B, C any] struct {
	item1 A
	item2 B
	item3 C
}

// NewThree creates new three item tuple.
func NewThree[A, B, C any](item1 A, item2 B, item3 C) Three[A, B, C] {
	return Three[A, B, C]{item1: item1, item2: item2, item3: item3}
}

// Item1 gets the first item.
func (t Three[A, B, C]) Item1() A {
	return t.item1
}

// Item2 gets the second item.
func (t Three[A, B, C]) Item2() B {
	return t.item2
}

// Item3 gets the third item.
func (t Three[A, B, C]) Item3() C {
	return t.item3
}

// Len implements Tuple interface.
func (t Three[A, B, C]) Len() int {
	return 3
}

// Item implements Tuple interface.
func (t Three[A, B, C]) Item(i int) interface{} {
	switch i {
	case 0:
		return t.item1
	case 1:
		return t.item2
	case 2:
		return t.item3
	}
	return nil
}

// ItemName implements Tuple interface.
func (t Three[A, B, C]) ItemName(i int) string {
	return itemName(i)
}

func itemName(i int) string {
	return "Item" + strconv.Itoa(i+1)
}
