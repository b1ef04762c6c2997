package contract

import (
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/mapping"
)

// FieldElement is the name of the element holding the overridden field value.
const FieldElement = "Field"

// Property is the default property contract. It writes the property value into the child element
// named after the property and sets it back on read.
type Property struct{}

// Name implements PropertyContract interface.
func (Property) Name() string {
	return "Property"
}

// CanManageProperty implements PropertyContract interface.
func (Property) CanManageProperty(*mapping.Property, *Session) Support {
	return Supports(LevelDefault, 0, Match{})
}

// WriteProperty implements PropertyContract interface.
func (Property) WriteProperty(owner reflect.Value, p *mapping.Property, parent *document.Element, s *Session) error {
	v, err := mapping.GetProperty(owner, p)
	if err != nil {
		return err
	}
	s.WriteChild(parent, p.ElementName, v, p.Type, p)
	return nil
}

// ReadProperty implements PropertyContract interface. The read only properties are read,
// so that the objects defined within them are registered, but never set on the owner.
func (Property) ReadProperty(owner reflect.Value, p *mapping.Property, e *document.Element, s *Session) error {
	if p.IsReadOnly() {
		s.Read(e, p.Type, p, reflect.Value{})
		return nil
	}
	existing, err := mapping.GetProperty(owner, p)
	if err != nil {
		return err
	}
	v, ok := s.Read(e, p.Type, p, existing)
	if !ok {
		return nil
	}
	return mapping.SetProperty(owner, p, v)
}

// NoWrite is the property contract for the properties marked with the 'writeonly' marker.
// These are never written and their elements are ignored.
type NoWrite struct{}

// Name implements PropertyContract interface.
func (NoWrite) Name() string {
	return "NoWrite"
}

// CanManageProperty implements PropertyContract interface.
func (NoWrite) CanManageProperty(p *mapping.Property, _ *Session) Support {
	if p.IsWriteOnly() {
		return Supports(LevelAttribute, 0, Match{Property: p})
	}
	return NotSupported
}

// WriteProperty implements PropertyContract interface.
func (NoWrite) WriteProperty(reflect.Value, *mapping.Property, *document.Element, *Session) error {
	return nil
}

// ReadProperty implements PropertyContract interface.
func (NoWrite) ReadProperty(reflect.Value, *mapping.Property, *document.Element, *Session) error {
	return nil
}

// FieldOverride is the property contract for the properties backed by a field defined in the 'field' marker.
// The field value is written in the 'Field' child element and set directly on the current object on read.
// The optional 'sync' marker names the method called after the field is set.
//
//	<total>
//		<Field name="sum">12</Field>
//	</total>
type FieldOverride struct{}

// Name implements PropertyContract interface.
func (FieldOverride) Name() string {
	return "FieldOverride"
}

// CanManageProperty implements PropertyContract interface.
func (FieldOverride) CanManageProperty(p *mapping.Property, _ *Session) Support {
	if p.MarkerValue(mapping.MarkerField) != "" {
		return Supports(LevelAttribute, 0, Match{Property: p})
	}
	return NotSupported
}

// WriteProperty implements PropertyContract interface.
func (FieldOverride) WriteProperty(owner reflect.Value, p *mapping.Property, parent *document.Element, s *Session) error {
	name := p.MarkerValue(mapping.MarkerField)
	v, err := mapping.GetField(owner, name)
	if err != nil {
		return err
	}
	field := document.New(FieldElement).SetAttr(document.AttrName, name)
	if !s.Write(v, v.Type(), nil, field) {
		return nil
	}
	parent.NewChild(p.ElementName).AddChild(field)
	return nil
}

// ReadProperty implements PropertyContract interface. If the element has no matching 'Field' child
// it is read as a regular property.
func (FieldOverride) ReadProperty(owner reflect.Value, p *mapping.Property, e *document.Element, s *Session) error {
	name := p.MarkerValue(mapping.MarkerField)
	var field *document.Element
	for _, child := range e.ChildrenNamed(FieldElement) {
		if fieldName, _ := child.Attr(document.AttrName); fieldName == name {
			field = child
			break
		}
	}
	if field == nil {
		return Property{}.ReadProperty(owner, p, e, s)
	}

	current := s.Current()
	if !current.IsValid() {
		current = owner
	}
	ft, err := mapping.FieldType(current.Type(), name)
	if err != nil {
		return err
	}
	v, ok := s.Read(field, ft, nil, reflect.Value{})
	if !ok {
		return nil
	}
	if err = mapping.SetField(current, name, v); err != nil {
		return err
	}
	if method := p.MarkerValue(mapping.MarkerSync); method != "" {
		return mapping.CallMethod(current, method)
	}
	return nil
}
