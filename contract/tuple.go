package contract

import (
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/mapping"
	"github.com/neuronlabs/xgraph/tuple"
)

var (
	tupleType    = reflect.TypeOf((*tuple.Tuple)(nil)).Elem()
	keyValueType = reflect.TypeOf((*tuple.KeyValue)(nil)).Elem()
)

// Tuple is the contract for the immutable tuple.Two and tuple.Three values.
// The components are read before the tuple is constructed.
//
//	<point type="tuple.Two[int,int]">
//		<Item1>1</Item1>
//		<Item2>2</Item2>
//	</point>
type Tuple struct{ Base }

// Name implements Contract interface.
func (Tuple) Name() string {
	return "Tuple"
}

// CanManageType implements Contract interface.
func (Tuple) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Kind() == reflect.Struct && t.Implements(tupleType) && !t.Implements(keyValueType) {
		return Supports(LevelType, SubInterface, Match{Type: t})
	}
	return NotSupported
}

// Create implements Contract interface.
func (Tuple) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	return createTuple(m.Type, e, s)
}

// Read implements Contract interface.
func (Tuple) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (Tuple) Write(_ Match, v reflect.Value, e *document.Element, s *Session) error {
	return writeTuple(v, e, s)
}

// Pair is the contract for the tuple.Pair key value pairs.
//
//	<entry type="tuple.Pair[string,int]">
//		<Key>first</Key>
//		<Value>1</Value>
//	</entry>
type Pair struct{ Base }

// Name implements Contract interface.
func (Pair) Name() string {
	return "Pair"
}

// CanManageType implements Contract interface.
func (Pair) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Kind() == reflect.Struct && t.Implements(keyValueType) {
		return Supports(LevelType, SubInterface, Match{Type: t})
	}
	return NotSupported
}

// Create implements Contract interface.
func (Pair) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	return createTuple(m.Type, e, s)
}

// Read implements Contract interface.
func (Pair) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (Pair) Write(_ Match, v reflect.Value, e *document.Element, s *Session) error {
	return writeTuple(v, e, s)
}

// createTuple reads all the components in the order and sets them into the new tuple.
func createTuple(t reflect.Type, e *document.Element, s *Session) (reflect.Value, error) {
	shape := reflect.Zero(t).Interface().(tuple.Tuple)
	ptr := reflect.New(t)
	for i := 0; i < shape.Len(); i++ {
		field := t.Field(i)
		v, ok := s.ReadChild(e, shape.ItemName(i), field.Type)
		if !ok {
			continue
		}
		if err := mapping.SetField(ptr, field.Name, v); err != nil {
			return reflect.Value{}, err
		}
	}
	return ptr.Elem(), nil
}

func writeTuple(v reflect.Value, e *document.Element, s *Session) error {
	e.SetAttr(document.AttrType, s.TypeName(v.Type()))
	shape := v.Interface().(tuple.Tuple)
	for i := 0; i < shape.Len(); i++ {
		field := v.Type().Field(i)
		item, err := mapping.GetField(v, field.Name)
		if err != nil {
			return err
		}
		s.WriteChild(e, shape.ItemName(i), item, field.Type, nil)
	}
	return nil
}
