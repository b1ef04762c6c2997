package contract

import (
	"reflect"
	"strconv"
	"time"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

var timeType = reflect.TypeOf(time.Time{})

// Object is the default reflective contract for the structs and pointers to structs.
// The pointers are identity tracked, the first occurrence gets the 'id' attribute.
type Object struct{ Base }

// Name implements Contract interface.
func (Object) Name() string {
	return "Object"
}

// CanManageType implements Contract interface.
func (Object) CanManageType(t reflect.Type, _ *Session) Support {
	if isObjectType(t) {
		return Supports(LevelDefault, 0, Match{Type: t})
	}
	return NotSupported
}

// NeedsCreate implements Contract interface. Struct values are read in place, the pointers
// only when the property is marked with the 'inplace' marker.
func (Object) NeedsCreate(m Match) bool {
	if m.Type.Kind() != reflect.Ptr {
		return false
	}
	return m.Property == nil || !m.Property.HasMarker(mapping.MarkerInPlace)
}

// Create implements Contract interface. The created instance is registered with the element id
// before it is populated, so that the references within its properties could resolve to it.
func (Object) Create(m Match, e *document.Element, s *Session) (reflect.Value, error) {
	v, err := mapping.Instantiate(m.Type)
	if err != nil {
		return reflect.Value{}, err
	}
	if err = registerElementID(v, e, s); err != nil {
		s.AddError(err, e)
	}
	return v, nil
}

// Read implements Contract interface.
func (Object) Read(m Match, v reflect.Value, e *document.Element, s *Session) (reflect.Value, error) {
	if v.Kind() == reflect.Ptr {
		if _, ok := s.Reference(v); !ok {
			if err := registerElementID(v, e, s); err != nil {
				s.AddError(err, e)
			}
		}
	} else if !v.CanAddr() {
		addressable := reflect.New(v.Type()).Elem()
		addressable.Set(v)
		v = addressable
	}

	st, err := s.Describe(v.Type())
	if err != nil {
		return v, err
	}
	s.Push(v)
	defer s.Pop()

	for _, child := range e.Children {
		p, ok := st.ElementProperty(child.Name)
		if !ok {
			if s.engine.StrictProperties {
				s.AddError(errors.Newf(class.MappingPropertyNotFound, "type: '%s' has no property for the element: '%s'", st.Type, child.Name), child)
			}
			if child.HasAttr(document.AttrType) {
				// the element might still define the object referenced later in the document.
				s.Read(child, nil, nil, reflect.Value{})
			}
			continue
		}
		pc := s.engine.Registry.SelectProperty(p, s)
		if pc == nil {
			continue
		}
		s.readProperty(pc, v, p, child)
	}
	return v, nil
}

// Write implements Contract interface.
func (Object) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	// the object is registered only if it could be written.
	st, err := s.Describe(v.Type())
	if err != nil {
		return err
	}
	e.SetAttr(document.AttrType, s.TypeName(v.Type()))
	if v.Kind() == reflect.Ptr {
		e.SetAttr(document.AttrID, strconv.Itoa(s.Register(v)))
	}
	s.Push(v)
	defer s.Pop()

	for _, p := range st.Properties() {
		pc := s.engine.Registry.SelectProperty(p, s)
		if pc == nil {
			continue
		}
		s.writeProperty(pc, v, p, e)
	}
	return nil
}

func isObjectType(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != timeType
}

func registerElementID(v reflect.Value, e *document.Element, s *Session) error {
	id, ok, err := s.ParseID(e, document.AttrID)
	if err != nil || !ok || v.Kind() != reflect.Ptr {
		return err
	}
	s.RegisterID(id, v)
	return nil
}
