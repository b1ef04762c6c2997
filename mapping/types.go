package mapping

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
)

var logger = log.NewModuleLogger("mapping")

var builtinTypes = []reflect.Type{
	reflect.TypeOf(false),
	reflect.TypeOf(""),
	reflect.TypeOf(int(0)),
	reflect.TypeOf(int8(0)),
	reflect.TypeOf(int16(0)),
	reflect.TypeOf(int32(0)),
	reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)),
	reflect.TypeOf(uint8(0)),
	reflect.TypeOf(uint16(0)),
	reflect.TypeOf(uint32(0)),
	reflect.TypeOf(uint64(0)),
	reflect.TypeOf(uintptr(0)),
	reflect.TypeOf(float32(0)),
	reflect.TypeOf(float64(0)),
	reflect.TypeOf(complex64(0)),
	reflect.TypeOf(complex128(0)),
	reflect.TypeOf(time.Time{}),
	reflect.TypeOf(time.Duration(0)),
	reflect.TypeOf((*interface{})(nil)).Elem(),
}

// Types is the registry of the types known by their names.
// It resolves the type markers written into the documents.
type Types struct {
	byName map[string]reflect.Type
	names  map[reflect.Type]string
	enums  map[reflect.Type]*Enum
	lock   sync.RWMutex
}

// NewTypes creates new type registry with the builtin types already registered.
func NewTypes() *Types {
	t := &Types{
		byName: map[string]reflect.Type{},
		names:  map[reflect.Type]string{},
		enums:  map[reflect.Type]*Enum{},
	}
	for _, bt := range builtinTypes {
		t.byName[bt.String()] = bt
		t.names[bt] = bt.String()
	}
	// 'byte' and 'rune' are aliases, but might be typed by the users.
	t.byName["byte"] = reflect.TypeOf(byte(0))
	t.byName["rune"] = reflect.TypeOf(rune(0))
	return t
}

// Register registers the types of provided 'values' together with all the named
// types reachable from their fields, elements and keys.
func (t *Types) Register(values ...interface{}) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	visited := map[reflect.Type]struct{}{}
	for _, v := range values {
		rt, ok := v.(reflect.Type)
		if !ok {
			rt = reflect.TypeOf(v)
		}
		if rt == nil {
			return errors.New(class.MappingTypeInvalid, "can't register nil value type")
		}
		if err := t.walk(rt, visited); err != nil {
			return err
		}
	}
	return nil
}

// RegisterName registers the type of value 'v' under the alias 'name'.
// The alias is used as the type marker instead of the canonical name.
func (t *Types) RegisterName(name string, v interface{}) error {
	rt, ok := v.(reflect.Type)
	if !ok {
		rt = reflect.TypeOf(v)
	}
	if rt == nil || name == "" {
		return errors.New(class.MappingTypeInvalid, "can't register empty name or nil type")
	}
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.set(name, rt); err != nil {
		return err
	}
	t.names[rt] = name
	return t.walk(rt, map[reflect.Type]struct{}{})
}

// Name gets the type marker name for the type 'rt'.
func (t *Types) Name(rt reflect.Type) string {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.name(rt)
}

// Resolve gets the type by its marker 'name'. Pointer, slice, array and map names
// of the resolvable types are composed on the fly.
func (t *Types) Resolve(name string) (reflect.Type, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	rt := t.resolve(strings.TrimSpace(name))
	if rt == nil {
		return nil, errors.Newf(class.MappingTypeUnresolved, "type: '%s' is not registered", name)
	}
	return rt, nil
}

// IsRegistered checks if the type 'rt' has registered name.
func (t *Types) IsRegistered(rt reflect.Type) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	_, ok := t.names[rt]
	return ok
}

func (t *Types) walk(rt reflect.Type, visited map[reflect.Type]struct{}) error {
	if _, ok := visited[rt]; ok {
		return nil
	}
	visited[rt] = struct{}{}

	if rt.Name() != "" {
		if _, ok := t.names[rt]; !ok {
			if err := t.set(canonicalName(rt, t.name), rt); err != nil {
				return err
			}
			t.names[rt] = canonicalName(rt, t.name)
			logger.Debug3f("Registered type: '%s'", t.names[rt])
		}
	}

	switch rt.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return t.walk(rt.Elem(), visited)
	case reflect.Map:
		if err := t.walk(rt.Key(), visited); err != nil {
			return err
		}
		return t.walk(rt.Elem(), visited)
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			markers := ParseMarkers(field)
			if hasMarker(markers, MarkerSkip) || (field.PkgPath != "" && !field.Anonymous && !hasMarker(markers, MarkerInclude)) {
				continue
			}
			if err := t.walk(field.Type, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Types) set(name string, rt reflect.Type) error {
	if registered, ok := t.byName[name]; ok && registered != rt {
		return errors.Newf(class.MappingTypeNameConflict, "type name: '%s' already registered for: '%s'", name, registered)
	}
	t.byName[name] = rt
	return nil
}

func (t *Types) name(rt reflect.Type) string {
	if name, ok := t.names[rt]; ok {
		return name
	}
	return canonicalName(rt, t.name)
}

func canonicalName(rt reflect.Type, elemName func(reflect.Type) string) string {
	if rt.Name() != "" {
		return rt.String()
	}
	switch rt.Kind() {
	case reflect.Ptr:
		return "*" + elemName(rt.Elem())
	case reflect.Slice:
		return "[]" + elemName(rt.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(rt.Len()) + "]" + elemName(rt.Elem())
	case reflect.Map:
		return "map[" + elemName(rt.Key()) + "]" + elemName(rt.Elem())
	}
	return rt.String()
}

func (t *Types) resolve(name string) reflect.Type {
	if rt, ok := t.byName[name]; ok {
		return rt
	}
	switch {
	case strings.HasPrefix(name, "*"):
		if elem := t.resolve(name[1:]); elem != nil {
			return reflect.PtrTo(elem)
		}
	case strings.HasPrefix(name, "[]"):
		if elem := t.resolve(name[2:]); elem != nil {
			return reflect.SliceOf(elem)
		}
	case strings.HasPrefix(name, "map["):
		end := closingBracket(name, 3)
		if end < 0 {
			return nil
		}
		key, elem := t.resolve(name[4:end]), t.resolve(name[end+1:])
		if key == nil || elem == nil || !key.Comparable() {
			return nil
		}
		return reflect.MapOf(key, elem)
	case strings.HasPrefix(name, "["):
		end := strings.IndexByte(name, ']')
		if end < 0 {
			return nil
		}
		n, err := strconv.Atoi(name[1:end])
		if err != nil || n < 0 {
			return nil
		}
		if elem := t.resolve(name[end+1:]); elem != nil {
			return reflect.ArrayOf(n, elem)
		}
	}
	return nil
}

// closingBracket finds the index of the bracket closing the one at 'open'.
func closingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
