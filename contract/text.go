package contract

import (
	"encoding"
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Text is the hidden contract for the values implementing encoding.TextMarshaler with the
// encoding.TextUnmarshaler pointer receiver. It must be forced with the 'contract=Text' marker.
type Text struct{ Base }

// Name implements Contract interface.
func (Text) Name() string {
	return "Text"
}

// Hidden implements Hidden interface.
func (Text) Hidden() bool {
	return true
}

// CanManageType implements Contract interface.
func (Text) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Implements(textMarshalerType) && reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return Supports(LevelType, SubInterface, Match{Type: t})
	}
	return NotSupported
}

// Create implements Contract interface.
func (Text) Create(m Match, _ *document.Element, _ *Session) (reflect.Value, error) {
	if m.Type == nil || m.Type.Kind() == reflect.Interface {
		return reflect.Value{}, errors.Newf(class.SerializationInstantiate, "can't instantiate text value of type: '%v'", m.Type)
	}
	return reflect.New(m.Type).Elem(), nil
}

// Read implements Contract interface.
func (Text) Read(m Match, v reflect.Value, e *document.Element, _ *Session) (reflect.Value, error) {
	unmarshaler, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	if !ok {
		return v, errors.Newf(class.SerializationParsing, "type: '%s' doesn't implement encoding.TextUnmarshaler", m.Type)
	}
	if err := unmarshaler.UnmarshalText([]byte(e.Text)); err != nil {
		return v, errors.Wrapf(class.SerializationParsing, err, "invalid text value: '%s'", e.Text)
	}
	return v, nil
}

// Write implements Contract interface.
func (Text) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	marshaler, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		return errors.Newf(class.SerializationWriteUnsupported, "type: '%s' doesn't implement encoding.TextMarshaler", v.Type())
	}
	text, err := marshaler.MarshalText()
	if err != nil {
		return errors.Wrap(class.SerializationWrite, err, "marshaling text failed")
	}
	writeTypeMarker(m, v.Type(), e, s)
	e.Text = string(text)
	return nil
}
