package contract

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

// identity is the reference table key of the object.
type identity struct {
	ptr uintptr
	typ reflect.Type
}

// Session is the context of a single serialization or deserialization call.
// It is not safe for concurrent use.
type Session struct {
	// Directory is the directory of the current document. The external references are
	// relative to this directory.
	Directory string
	// File is the path of the current document, used by the error locations.
	File string

	engine   *Engine
	resolver *ExternalResolver

	nextID  int
	ids     map[identity]int
	objects map[int]reflect.Value

	stack []reflect.Value
	errs  errors.MultiError
}

func newSession(engine *Engine, resolver *ExternalResolver) *Session {
	if resolver == nil {
		resolver = NewExternalResolver()
	}
	return &Session{
		engine:   engine,
		resolver: resolver,
		nextID:   engine.ReferenceBase,
		ids:      map[identity]int{},
		objects:  map[int]reflect.Value{},
	}
}

// Engine gets the session engine.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Registry gets the contract registry.
func (s *Session) Registry() *Registry {
	return s.engine.Registry
}

// Types gets the type registry.
func (s *Session) Types() *mapping.Types {
	return s.engine.Types
}

// Resolver gets the external reference resolver shared by the nested sessions.
func (s *Session) Resolver() *ExternalResolver {
	return s.resolver
}

// Describe describes the struct type 't' with the engine mapper.
func (s *Session) Describe(t reflect.Type) (*mapping.Struct, error) {
	return s.engine.Mapper.Describe(t)
}

// TypeName gets the type marker of the type 't'.
func (s *Session) TypeName(t reflect.Type) string {
	return s.engine.Types.Name(t)
}

/**

References

*/

// Reference gets the reference id of the object 'v'. Only non nil pointers are referable.
func (s *Session) Reference(v reflect.Value) (int, bool) {
	key, ok := identityOf(v)
	if !ok {
		return 0, false
	}
	id, ok := s.ids[key]
	return id, ok
}

// Register registers the object 'v' in the reference table with the next free id.
// If the object is already registered its id is returned.
func (s *Session) Register(v reflect.Value) int {
	key, ok := identityOf(v)
	if !ok {
		return 0
	}
	if id, ok := s.ids[key]; ok {
		return id
	}
	id := s.nextID
	s.nextID++
	s.ids[key] = id
	s.objects[id] = v
	return id
}

// RegisterID registers the object 'v' read from the document with given 'id'.
func (s *Session) RegisterID(id int, v reflect.Value) {
	if key, ok := identityOf(v); ok {
		s.ids[key] = id
	}
	s.objects[id] = v
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// Resolve gets the object registered with the reference 'id'.
func (s *Session) Resolve(id int) (reflect.Value, bool) {
	v, ok := s.objects[id]
	return v, ok
}

// ParseID parses the value of the reference attribute 'attr' of the element 'e'.
func (s *Session) ParseID(e *document.Element, attr string) (int, bool, error) {
	raw, ok := e.Attr(attr)
	if !ok {
		return 0, false, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, errors.Wrapf(class.SerializationParsing, err, "invalid '%s' attribute value: '%s'", attr, raw)
	}
	return id, true, nil
}

func identityOf(v reflect.Value) (identity, bool) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return identity{}, false
	}
	return identity{ptr: v.Pointer(), typ: v.Type()}, true
}

/**

Object stack

*/

// Push pushes the object 'v' on top of the current object stack.
func (s *Session) Push(v reflect.Value) {
	s.stack = append(s.stack, v)
}

// Pop removes the current object from the stack.
func (s *Session) Pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Current gets the object currently being read or written. Returns invalid value for the root.
func (s *Session) Current() reflect.Value {
	if len(s.stack) == 0 {
		return reflect.Value{}
	}
	return s.stack[len(s.stack)-1]
}

// Depth gets the size of the current object stack.
func (s *Session) Depth() int {
	return len(s.stack)
}

/**

Errors

*/

// Errors gets the errors recorded within the session.
func (s *Session) Errors() errors.MultiError {
	return s.errs
}

// AddError records the 'err' with the location of the element 'e'. The errors not classified
// within xgraph are recorded as internal errors.
func (s *Session) AddError(err error, e *document.Element) {
	if err == nil {
		return
	}
	switch t := err.(type) {
	case errors.MultiError:
		s.errs = append(s.errs, t...)
		return
	case *errors.Error:
		if t.Location.IsZero() {
			t.SetLocation(s.location(e))
		}
		s.errs = append(s.errs, t)
	default:
		s.errs = append(s.errs, errors.Wrap(class.SerializationInternal, err, "serialization failed").SetLocation(s.location(e)))
	}
	logger.Debugf("Recorded error: %v", s.errs[len(s.errs)-1])
}

func (s *Session) location(e *document.Element) errors.Location {
	loc := errors.Location{File: s.File}
	if e != nil {
		loc.Line, loc.Column = e.Line, e.Column
	}
	return loc
}

func (s *Session) recoverPanic(e *document.Element, ok *bool) {
	if r := recover(); r != nil {
		err, isErr := r.(error)
		if !isErr {
			err = fmt.Errorf("%v", r)
		}
		s.AddError(errors.Wrap(class.SerializationInternal, err, "contract panic"), e)
		*ok = false
	}
}

/**

Dispatch

*/

// ElementType gets the effective type of the element 'e'. It is the type named by the element
// type marker or the 'declared' type if the marker is not set.
func (s *Session) ElementType(e *document.Element, declared reflect.Type) (reflect.Type, error) {
	name, ok := e.Attr(document.AttrType)
	if !ok {
		return declared, nil
	}
	if declared != nil && s.TypeName(declared) == name {
		return declared, nil
	}
	t, err := s.engine.Types.Resolve(name)
	if err != nil {
		return nil, errors.Wrapf(class.SerializationUnresolvedType, err, "type: '%s' could not be resolved", name).SetLocation(s.location(e))
	}
	if declared != nil && !t.AssignableTo(declared) {
		return nil, errors.Newf(class.SerializationUnresolvedType, "type: '%s' is not assignable to: '%s'", name, declared).SetLocation(s.location(e))
	}
	return t, nil
}

// Write writes the value 'v' of the 'declared' type into the element 'e' with the best matching contract.
// The property 'p' might be nil. The errors are recorded in the session, the result defines if
// the value was written.
func (s *Session) Write(v reflect.Value, declared reflect.Type, p *mapping.Property, e *document.Element) (ok bool) {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	q := Query{Value: v, Type: declared, Declared: declared, Property: p}
	if v.IsValid() {
		q.Type = v.Type()
	}

	c, m := s.engine.Registry.Select(q, s)
	if c == nil {
		s.AddError(errors.Newf(class.SerializationWriteUnsupported, "no contract supports the value of type: '%s'", q.Type), e)
		return false
	}
	defer s.recoverPanic(e, &ok)

	if err := c.Write(m, v, e, s); err != nil {
		s.AddError(err, e)
		return false
	}
	return true
}

// WriteChild writes the value 'v' into the new child element of the 'parent' with given 'name'.
// The child is not added if the value could not be written.
func (s *Session) WriteChild(parent *document.Element, name string, v reflect.Value, declared reflect.Type, p *mapping.Property) bool {
	child := document.New(name)
	if !s.Write(v, declared, p, child) {
		return false
	}
	parent.AddChild(child)
	return true
}

// Read reads the element 'e' of the 'declared' type. If the 'existing' value is valid and the selected
// contract doesn't need create, the element is read into the existing value. The errors are recorded
// in the session, the result defines if the value was read.
func (s *Session) Read(e *document.Element, declared reflect.Type, p *mapping.Property, existing reflect.Value) (result reflect.Value, ok bool) {
	q := Query{Element: e, Declared: declared, Property: p}
	t, err := s.ElementType(e, declared)
	if err != nil {
		s.AddError(err, e)
	} else {
		q.Type = t
	}

	c, m := s.engine.Registry.Select(q, s)
	if c == nil {
		if err == nil {
			s.AddError(errors.Newf(class.SerializationUnresolvedContract, "no contract supports the element: '%s'", e.Name), e)
		}
		return reflect.Value{}, false
	}
	defer s.recoverPanic(e, &ok)

	v := existing
	if isAllocated(v) && v.Type() != m.Type {
		v = reflect.Value{}
	}
	if !isAllocated(v) || c.NeedsCreate(m) {
		if v, err = c.Create(m, e, s); err != nil {
			s.AddError(err, e)
			return reflect.Value{}, false
		}
	}
	if v, err = c.Read(m, v, e, s); err != nil {
		s.AddError(err, e)
		return v, false
	}
	return v, true
}

// ReadChild reads the child of the element 'e' with given 'name'. Missing child is
// recorded as the missing required element error.
func (s *Session) ReadChild(e *document.Element, name string, declared reflect.Type) (reflect.Value, bool) {
	child := e.Child(name)
	if child == nil {
		s.AddError(errors.Newf(class.SerializationMissingAttribute, "element: '%s' has no required child: '%s'", e.Name, name), e)
		return reflect.Value{}, false
	}
	return s.Read(child, declared, nil, reflect.Value{})
}

func (s *Session) writeProperty(c PropertyContract, owner reflect.Value, p *mapping.Property, parent *document.Element) (ok bool) {
	defer s.recoverPanic(parent, &ok)
	if err := c.WriteProperty(owner, p, parent, s); err != nil {
		s.AddError(err, parent)
		return false
	}
	return true
}

func (s *Session) readProperty(c PropertyContract, owner reflect.Value, p *mapping.Property, e *document.Element) (ok bool) {
	defer s.recoverPanic(e, &ok)
	if err := c.ReadProperty(owner, p, e, s); err != nil {
		s.AddError(err, e)
		return false
	}
	return true
}

func isAllocated(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return !v.IsNil()
	}
	return true
}
