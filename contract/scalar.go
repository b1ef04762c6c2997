package contract

import (
	"encoding/base64"
	"reflect"
	"strconv"
	"time"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

var (
	bytesType    = reflect.TypeOf([]byte(nil))
	durationType = reflect.TypeOf(time.Duration(0))
)

// writeTypeMarker sets the type marker for the values which type differs from the declared one.
func writeTypeMarker(m Match, t reflect.Type, e *document.Element, s *Session) {
	if m.Declared != t {
		e.SetAttr(document.AttrType, s.TypeName(t))
	}
}

// String is the contract for the string kind values, written as the element text.
type String struct{ Base }

// Name implements Contract interface.
func (String) Name() string {
	return "String"
}

// CanManageType implements Contract interface.
func (String) CanManageType(t reflect.Type, _ *Session) Support {
	if t.Kind() == reflect.String {
		return Supports(LevelType, SubKind, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface.
func (String) Read(_ Match, v reflect.Value, e *document.Element, _ *Session) (reflect.Value, error) {
	v.SetString(e.Text)
	return v, nil
}

// Write implements Contract interface.
func (String) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	e.Text = v.String()
	return nil
}

// Primitive is the contract for the booleans, integers, floating point numbers and byte slices.
// The byte slices are written base64 encoded.
type Primitive struct{ Base }

// Name implements Contract interface.
func (Primitive) Name() string {
	return "Primitive"
}

// CanManageType implements Contract interface.
func (Primitive) CanManageType(t reflect.Type, s *Session) Support {
	if t == bytesType {
		return Supports(LevelType, SubExact, Match{Type: t})
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Supports(LevelType, SubKind, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface. Numbers out of the type range are the NumberOverflow errors.
func (Primitive) Read(m Match, v reflect.Value, e *document.Element, _ *Session) (reflect.Value, error) {
	text := e.Text
	if v.Type() == bytesType {
		data, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return v, errors.Wrap(class.SerializationParsing, err, "invalid base64 value")
		}
		return reflect.ValueOf(data), nil
	}

	var err error
	switch v.Kind() {
	case reflect.Bool:
		var b bool
		if b, err = strconv.ParseBool(text); err == nil {
			v.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		if i, err = strconv.ParseInt(text, 10, v.Type().Bits()); err == nil {
			v.SetInt(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		if u, err = strconv.ParseUint(text, 10, v.Type().Bits()); err == nil {
			v.SetUint(u)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(text, v.Type().Bits()); err == nil {
			v.SetFloat(f)
		}
	}
	if err != nil {
		return v, numberError(err, text, m.Type)
	}
	return v, nil
}

// Write implements Contract interface.
func (Primitive) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	if v.Type() == bytesType {
		e.Text = base64.StdEncoding.EncodeToString(v.Bytes())
		return nil
	}
	switch v.Kind() {
	case reflect.Bool:
		e.Text = strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.Text = strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.Text = strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		e.Text = strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
	}
	return nil
}

func numberError(err error, text string, t reflect.Type) error {
	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		return errors.Newf(class.SerializationNumberOverflow, "value: '%s' overflows the type: '%s'", text, t)
	}
	return errors.Wrapf(class.SerializationParsing, err, "invalid value: '%s' for the type: '%s'", text, t)
}

// DateTime is the contract for the time.Time values written in the RFC3339 format with nanoseconds.
type DateTime struct{ Base }

// Name implements Contract interface.
func (DateTime) Name() string {
	return "DateTime"
}

// CanManageType implements Contract interface.
func (DateTime) CanManageType(t reflect.Type, _ *Session) Support {
	if t == timeType {
		return Supports(LevelType, SubExact, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface.
func (DateTime) Read(_ Match, v reflect.Value, e *document.Element, _ *Session) (reflect.Value, error) {
	t, err := time.Parse(time.RFC3339Nano, e.Text)
	if err != nil {
		return v, errors.Wrapf(class.SerializationParsing, err, "invalid date time: '%s'", e.Text)
	}
	v.Set(reflect.ValueOf(t))
	return v, nil
}

// Write implements Contract interface.
func (DateTime) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	e.Text = v.Interface().(time.Time).Format(time.RFC3339Nano)
	return nil
}

// TimeSpan is the contract for the time.Duration values written in the go duration format, i.e. '1h30m'.
type TimeSpan struct{ Base }

// Name implements Contract interface.
func (TimeSpan) Name() string {
	return "TimeSpan"
}

// CanManageType implements Contract interface.
func (TimeSpan) CanManageType(t reflect.Type, _ *Session) Support {
	if t == durationType {
		return Supports(LevelType, SubExact, Match{Type: t})
	}
	return NotSupported
}

// Read implements Contract interface.
func (TimeSpan) Read(_ Match, v reflect.Value, e *document.Element, _ *Session) (reflect.Value, error) {
	d, err := time.ParseDuration(e.Text)
	if err != nil {
		return v, errors.Wrapf(class.SerializationParsing, err, "invalid duration: '%s'", e.Text)
	}
	v.SetInt(int64(d))
	return v, nil
}

// Write implements Contract interface.
func (TimeSpan) Write(m Match, v reflect.Value, e *document.Element, s *Session) error {
	writeTypeMarker(m, v.Type(), e, s)
	e.Text = time.Duration(v.Int()).String()
	return nil
}
