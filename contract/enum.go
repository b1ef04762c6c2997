package contract

import (
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

// ValueElement is the name of the element holding the wrapped value.
const ValueElement = "Value"

// Enum is the contract for the enumerations registered in the type registry.
// The value is written by its symbolic member name.
//
//	<color type="paint.Color">
//		<Value>Red</Value>
//	</color>
type Enum struct{ Base }

// Name implements Contract interface.
func (Enum) Name() string {
	return "Enum"
}

// CanManageType implements Contract interface.
func (Enum) CanManageType(t reflect.Type, s *Session) Support {
	if e, ok := s.Types().Enum(t); ok {
		return Supports(LevelType, SubExact, Match{Type: t, Data: e})
	}
	return NotSupported
}

// Read implements Contract interface. Unknown member names are the parsing errors.
func (Enum) Read(m Match, v reflect.Value, e *document.Element, s *Session) (reflect.Value, error) {
	enum, ok := m.Data.(*mapping.Enum)
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationUnresolvedType, "type: '%s' is not registered enum", m.Type)
	}
	child := e.Child(ValueElement)
	if child == nil {
		return reflect.Value{}, errors.Newf(class.SerializationMissingAttribute, "enum element: '%s' has no value", e.Name)
	}
	member, err := enum.Parse(child.Text)
	if err != nil {
		return reflect.Value{}, err
	}
	v.Set(member)
	return v, nil
}

// Write implements Contract interface.
func (Enum) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	enum, ok := m.Data.(*mapping.Enum)
	if !ok {
		return errors.Newf(class.SerializationWriteUnsupported, "type: '%s' is not registered enum", v.Type())
	}
	name, ok := enum.Name(v)
	if !ok {
		return errors.Newf(class.SerializationWriteUnsupported, "value: '%v' is not a member of the enum: '%s'", v.Interface(), v.Type())
	}
	e.SetAttr(document.AttrType, s.TypeName(v.Type()))
	e.NewChild(ValueElement).Text = name
	return nil
}
