package contract

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Collection element names.
const (
	ItemElement  = "item"
	EntryElement = "Entry"
	KeyElement   = "Key"
)

// Slice is the contract for the slices and arrays. Each item is written in a child element named
// by the singular form of the collection element name.
//
//	<tags>
//		<tag>first</tag>
//		<tag>second</tag>
//	</tags>
type Slice struct{ Base }

// Name implements Contract interface.
func (Slice) Name() string {
	return "Slice"
}

// CanManageType implements Contract interface.
func (Slice) CanManageType(t reflect.Type, _ *Session) Support {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return Supports(LevelType, SubKind, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface. The items that could not be read are set to zero values,
// so that the following items keep their positions.
func (Slice) Read(m Match, v reflect.Value, e *document.Element, s *Session) (reflect.Value, error) {
	elem := m.Type.Elem()
	for i, child := range e.Children {
		item, ok := s.Read(child, elem, nil, reflect.Value{})
		if !ok || !item.IsValid() {
			item = reflect.Zero(elem)
		}
		if v.Kind() == reflect.Array {
			if i >= v.Len() {
				return v, errors.Newf(class.SerializationParsing, "array: '%s' has more than %d items", e.Name, v.Len())
			}
			v.Index(i).Set(item)
			continue
		}
		v = reflect.Append(v, item)
	}
	return v, nil
}

// Write implements Contract interface.
func (Slice) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	name := itemName(e.Name)
	elem := v.Type().Elem()
	for i := 0; i < v.Len(); i++ {
		s.WriteChild(e, name, v.Index(i), elem, nil)
	}
	return nil
}

func itemName(collection string) string {
	singular := inflection.Singular(collection)
	if singular == "" || singular == collection {
		return ItemElement
	}
	return singular
}

// Map is the contract for the maps with the scalar keys. The entries are written sorted by their keys.
//
//	<scores>
//		<Entry>
//			<Key>first</Key>
//			<Value>1</Value>
//		</Entry>
//	</scores>
type Map struct{ Base }

// Name implements Contract interface.
func (Map) Name() string {
	return "Map"
}

// CanManageType implements Contract interface.
func (Map) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Kind() == reflect.Map && isScalar(t.Key()) {
		return Supports(LevelType, SubKind, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface.
func (Map) Read(m Match, v reflect.Value, e *document.Element, s *Session) (reflect.Value, error) {
	for _, entry := range e.ChildrenNamed(EntryElement) {
		key, ok := s.ReadChild(entry, KeyElement, m.Type.Key())
		if !ok {
			continue
		}
		value, ok := s.ReadChild(entry, ValueElement, m.Type.Elem())
		if !ok || !value.IsValid() {
			value = reflect.Zero(m.Type.Elem())
		}
		v.SetMapIndex(key, value)
	}
	return v, nil
}

// Write implements Contract interface.
func (Map) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	keys := v.MapKeys()
	texts := make(map[int]string, len(keys))
	for i, key := range keys {
		texts[i] = fmt.Sprint(key.Interface())
	}
	indexes := make([]int, len(keys))
	for i := range indexes {
		indexes[i] = i
	}
	sort.Slice(indexes, func(i, j int) bool {
		return texts[indexes[i]] < texts[indexes[j]]
	})

	for _, i := range indexes {
		entry := document.New(EntryElement)
		if !s.WriteChild(entry, KeyElement, keys[i], v.Type().Key(), nil) {
			continue
		}
		s.WriteChild(entry, ValueElement, v.MapIndex(keys[i]), v.Type().Elem(), nil)
		e.AddChild(entry)
	}
	return nil
}
