package mapping

import (
	"reflect"
	"unsafe"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// GetProperty gets the value of the property 'p' from the 'owner' struct or pointer to struct.
func GetProperty(owner reflect.Value, p *Property) (reflect.Value, error) {
	sv, err := structValue(owner, false)
	if err != nil {
		return reflect.Value{}, err
	}
	return accessible(sv.FieldByIndex(p.Index)), nil
}

// SetProperty sets the 'value' of the property 'p' in the 'owner' pointer to struct.
func SetProperty(owner reflect.Value, p *Property, value reflect.Value) error {
	sv, err := structValue(owner, true)
	if err != nil {
		return err
	}
	return assign(accessible(sv.FieldByIndex(p.Index)), value, p.String())
}

// GetField gets the value of the field with given go 'name'. The field might be unexported.
func GetField(owner reflect.Value, name string) (reflect.Value, error) {
	sv, err := structValue(owner, false)
	if err != nil {
		return reflect.Value{}, err
	}
	field, ok := sv.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}, errors.Newf(class.MappingPropertyNotFound, "field: '%s' not found in: '%s'", name, sv.Type())
	}
	return accessible(sv.FieldByIndex(field.Index)), nil
}

// SetField sets the 'value' of the field with given go 'name' in the 'owner' pointer to struct.
// The field might be unexported.
func SetField(owner reflect.Value, name string, value reflect.Value) error {
	sv, err := structValue(owner, true)
	if err != nil {
		return err
	}
	field, ok := sv.Type().FieldByName(name)
	if !ok {
		return errors.Newf(class.MappingPropertyNotFound, "field: '%s' not found in: '%s'", name, sv.Type())
	}
	return assign(accessible(sv.FieldByIndex(field.Index)), value, sv.Type().String()+"."+name)
}

// FieldType gets the type of the field with given go 'name' in the struct type 't'.
func FieldType(t reflect.Type, name string) (reflect.Type, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(class.MappingTypeInvalid, "type: '%s' is not a struct", t)
	}
	field, ok := t.FieldByName(name)
	if !ok {
		return nil, errors.Newf(class.MappingPropertyNotFound, "field: '%s' not found in: '%s'", name, t)
	}
	return field.Type, nil
}

// CallMethod calls the zero argument method with given 'name' on the 'owner'.
// If the method returns an error it is returned by the function.
func CallMethod(owner reflect.Value, name string) error {
	method := owner.MethodByName(name)
	if !method.IsValid() && owner.CanAddr() {
		method = owner.Addr().MethodByName(name)
	}
	if !method.IsValid() {
		return errors.Newf(class.MappingPropertyMethod, "method: '%s' not found for: '%s'", name, owner.Type())
	}
	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() > 1 || (mt.NumOut() == 1 && mt.Out(0) != errorType) {
		return errors.Newf(class.MappingPropertyMethod, "method: '%s.%s' must take no arguments and return optional error", owner.Type(), name)
	}
	out := method.Call(nil)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

// Instantiate creates new value of the type 't'. Pointers are allocated, maps and slices
// are made empty, all other types get an addressable zero value.
func Instantiate(t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return reflect.Value{}, errors.Newf(class.SerializationInstantiate, "can't instantiate type: '%s'", t)
	case reflect.Ptr:
		return reflect.New(t.Elem()), nil
	case reflect.Map:
		return reflect.MakeMap(t), nil
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil
	}
	return reflect.New(t).Elem(), nil
}

func structValue(owner reflect.Value, settable bool) (reflect.Value, error) {
	v := owner
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, errors.New(class.MappingPropertyValue, "nil owner value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Newf(class.MappingTypeInvalid, "owner: '%s' is not a struct", v.Type())
	}
	if !v.CanAddr() {
		if settable {
			return reflect.Value{}, errors.Newf(class.MappingPropertyValue, "owner: '%s' is not addressable", v.Type())
		}
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}
	return v, nil
}

// accessible returns the value that could be read and set even if it was obtained through unexported field.
func accessible(v reflect.Value) reflect.Value {
	if v.CanSet() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func assign(dst, value reflect.Value, name string) error {
	if !value.IsValid() {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	switch {
	case value.Type().AssignableTo(dst.Type()):
		dst.Set(value)
	case value.Kind() == reflect.Interface && !value.IsNil() && value.Elem().Type().AssignableTo(dst.Type()):
		dst.Set(value.Elem())
	case value.Type().ConvertibleTo(dst.Type()) && value.Kind() == dst.Kind():
		dst.Set(value.Convert(dst.Type()))
	default:
		return errors.Newf(class.MappingPropertyValue, "value of type: '%s' is not assignable to: '%s' of type: '%s'", value.Type(), name, dst.Type())
	}
	return nil
}
