package mapping

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Enum is the registered enumeration type with its symbolic member names.
type Enum struct {
	Type reflect.Type

	byName  map[string]reflect.Value
	byValue map[interface{}]string
	names   []string
}

// Name gets the symbolic name of the enum value 'v'.
func (e *Enum) Name(v reflect.Value) (string, bool) {
	if v.Type() != e.Type {
		return "", false
	}
	name, ok := e.byValue[v.Interface()]
	return name, ok
}

// Parse gets the enum member value with given symbolic 'name'.
func (e *Enum) Parse(name string) (reflect.Value, error) {
	v, ok := e.byName[name]
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationParsing, "'%s' is not a member of the enum: '%s'", name, e.Type)
	}
	return v, nil
}

// Names lists the member names in the order of the member values.
func (e *Enum) Names() []string {
	return append([]string(nil), e.names...)
}

// RegisterEnum registers the enumeration type of the provided 'members'. Each member
// must be of the same integer kind type and implement fmt.Stringer. The member names
// are taken from their String method.
func (t *Types) RegisterEnum(members ...interface{}) (*Enum, error) {
	if len(members) == 0 {
		return nil, errors.New(class.MappingEnumInvalid, "no enum members provided")
	}

	e := &Enum{
		Type:    reflect.TypeOf(members[0]),
		byName:  map[string]reflect.Value{},
		byValue: map[interface{}]string{},
	}
	if !isIntegerKind(e.Type.Kind()) || e.Type.Name() == "" {
		return nil, errors.Newf(class.MappingEnumInvalid, "enum type: '%s' must be named integer type", e.Type)
	}

	values := make([]reflect.Value, 0, len(members))
	for _, member := range members {
		v := reflect.ValueOf(member)
		if v.Type() != e.Type {
			return nil, errors.Newf(class.MappingEnumInvalid, "enum member: '%v' is not of type: '%s'", member, e.Type)
		}
		stringer, ok := member.(fmt.Stringer)
		if !ok {
			return nil, errors.Newf(class.MappingEnumInvalid, "enum type: '%s' doesn't implement fmt.Stringer", e.Type)
		}
		name := stringer.String()
		if _, ok := e.byName[name]; ok {
			return nil, errors.Newf(class.MappingEnumInvalid, "duplicated enum member name: '%s'", name)
		}
		e.byName[name] = v
		e.byValue[member] = name
		values = append(values, v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return lessInteger(values[i], values[j])
	})
	for _, v := range values {
		e.names = append(e.names, e.byValue[v.Interface()])
	}

	if err := t.Register(e.Type); err != nil {
		return nil, err
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	t.enums[e.Type] = e
	logger.Debug2f("Registered enum: '%s' with %d members", e.Type, len(e.names))
	return e, nil
}

// Enum gets the registered enum for the type 'rt'.
func (t *Types) Enum(rt reflect.Type) (*Enum, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	e, ok := t.enums[rt]
	return e, ok
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func lessInteger(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	}
	return a.Int() < b.Int()
}
