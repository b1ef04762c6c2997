package contract

import (
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Nullable is the contract for the pointers to the scalar values, i.e. *int or *time.Time.
// The pointed value is written in the 'Value' child. Nil pointers are handled by the Null contract.
//
//	<limit type="*int">
//		<Value>10</Value>
//	</limit>
type Nullable struct{ Base }

// Name implements Contract interface.
func (Nullable) Name() string {
	return "Nullable"
}

// CanManageType implements Contract interface.
func (Nullable) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Kind() == reflect.Ptr && isScalar(t.Elem()) {
		return Supports(LevelType, SubKind, Match{Type: t})
	}
	return NotSupported
}

// Create implements Contract interface.
func (Nullable) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	child := e.Child(ValueElement)
	if child == nil {
		return reflect.Value{}, errors.Newf(class.SerializationMissingAttribute, "nullable element: '%s' has no value", e.Name)
	}
	v, ok := s.Read(child, m.Type.Elem(), nil, reflect.Value{})
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationParsing, "nullable element: '%s' value could not be read", e.Name)
	}
	ptr := reflect.New(m.Type.Elem())
	ptr.Elem().Set(v)
	return ptr, nil
}

// Read implements Contract interface.
func (Nullable) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (Nullable) Write(_ Match, v reflect.Value, e *document.Element, s *Session) error {
	e.SetAttr(document.AttrType, s.TypeName(v.Type()))
	if !s.WriteChild(e, ValueElement, v.Elem(), v.Type().Elem(), nil) {
		return errors.Newf(class.SerializationWrite, "writing nullable value of type: '%s' failed", v.Type())
	}
	return nil
}

func isScalar(t reflect.Type) bool {
	if t == timeType {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
