package contract

import (
	"reflect"
	"strconv"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

// Reference is the contract for the objects already written within the session.
// The repeated occurrences are written as the 'ref' attribute with the object id.
type Reference struct{ Base }

// Name implements Contract interface.
func (Reference) Name() string {
	return "Reference"
}

// CanManageValue implements Contract interface.
func (Reference) CanManageValue(v reflect.Value, s *Session) Support {
	if id, ok := s.Reference(v); ok {
		return Supports(LevelElement, 0, Match{Type: v.Type(), Data: id})
	}
	return NotSupported
}

// CanManageElement implements Contract interface. The 'ref' attribute wins over the 'path',
// as the referenced object is already read within the session.
func (Reference) CanManageElement(e *document.Element, _ *Session) Support {
	if e.HasAttr(document.AttrRef) {
		return Supports(LevelElement, 2, Match{})
	}
	return NotSupported
}

// Create implements Contract interface. It resolves the referenced object.
func (Reference) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	id, _, err := s.ParseID(e, document.AttrRef)
	if err != nil {
		return reflect.Value{}, err
	}
	v, ok := s.Resolve(id)
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationReferenceUnknown, "reference to unknown id: %d", id)
	}
	if m.Declared != nil && !v.Type().AssignableTo(m.Declared) {
		return reflect.Value{}, errors.Newf(class.SerializationReferenceUnknown, "referenced object: '%s' is not assignable to: '%s'", v.Type(), m.Declared)
	}
	return v, nil
}

// Read implements Contract interface.
func (Reference) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (Reference) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	id, ok := m.Data.(int)
	if !ok {
		id = s.Register(v)
	}
	e.SetAttr(document.AttrRef, strconv.Itoa(id))
	return nil
}

// External is the contract for the objects stored in separate documents. The objects implement
// mapping.ExternalObject and are written as the 'path' attribute relative to the current document.
type External struct{ Base }

// Name implements Contract interface.
func (External) Name() string {
	return "External"
}

// CanManageValue implements Contract interface. The root of the document is never external.
func (External) CanManageValue(v reflect.Value, s *Session) Support {
	if s.Depth() == 0 || !v.CanInterface() {
		return NotSupported
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return NotSupported
	}
	external, ok := v.Interface().(mapping.ExternalObject)
	if !ok {
		return NotSupported
	}
	if path := external.ExternalPath(); path != "" {
		return Supports(LevelElement, 1, Match{Type: v.Type(), Data: path})
	}
	return NotSupported
}

// CanManageElement implements Contract interface.
func (External) CanManageElement(e *document.Element, _ *Session) Support {
	if e.HasAttr(document.AttrPath) {
		return Supports(LevelElement, 1, Match{})
	}
	return NotSupported
}

// Create implements Contract interface. It loads the object from the external document.
func (External) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	path, _ := e.Attr(document.AttrPath)
	if path == "" {
		return reflect.Value{}, errors.New(class.SerializationMissingAttribute, "empty external reference path")
	}
	return s.LoadExternal(path, m.Declared)
}

// Read implements Contract interface.
func (External) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (External) Write(m Match, _ reflect.Value, e *document.Element, s *Session) error {
	e.SetAttr(document.AttrPath, s.RelativePath(m.Data.(string)))
	return nil
}

// Null is the contract for the nil values, written as the 'null' attribute.
type Null struct{ Base }

// Name implements Contract interface.
func (Null) Name() string {
	return "Null"
}

// CanManageValue implements Contract interface.
func (Null) CanManageValue(v reflect.Value, _ *Session) Support {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return Supports(LevelElement, 0, Match{})
		}
	}
	return NotSupported
}

// CanManageElement implements Contract interface.
func (Null) CanManageElement(e *document.Element, _ *Session) Support {
	if null, _ := e.Attr(document.AttrNull); null == "true" {
		return Supports(LevelElement, 0, Match{})
	}
	return NotSupported
}

// Create implements Contract interface. It creates the zero value of the declared type.
func (Null) Create(m Match, _ *document.Element, _ *Session) (reflect.Value, error) {
	t := m.Declared
	if t == nil {
		t = m.Type
	}
	if t == nil {
		return reflect.Value{}, nil
	}
	return reflect.Zero(t), nil
}

// Read implements Contract interface.
func (Null) Read(_ Match, v reflect.Value, _ *document.Element, _ *Session) (reflect.Value, error) {
	return v, nil
}

// Write implements Contract interface.
func (Null) Write(_ Match, _ reflect.Value, e *document.Element, _ *Session) error {
	e.SetAttr(document.AttrNull, "true")
	return nil
}
