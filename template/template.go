// Package template contains the object templates. A template captures the serialized snapshot
// of a prototype object and creates independent copies of it on demand.
package template

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/xgraph/contract"
	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
)

var logger = log.NewModuleLogger("template")

// Template is the captured prototype of the objects assignable to the base type.
// The template is empty until it is initialized from a prototype.
type Template struct {
	engine        *contract.Engine
	baseType      reflect.Type
	templatedType reflect.Type
	snapshot      *document.Element

	editor interface{}
	cancel func()
	errs   errors.MultiError
	lock   sync.RWMutex
}

// New creates new empty template of the 'baseType' using the 'engine'.
func New(engine *contract.Engine, baseType reflect.Type) *Template {
	return &Template{engine: engine, baseType: baseType}
}

// For creates new empty template with the base type 'T'.
func For[T any](engine *contract.Engine) *Template {
	return New(engine, reflect.TypeOf((*T)(nil)).Elem())
}

// BaseType gets the template base type.
func (t *Template) BaseType() reflect.Type {
	return t.baseType
}

// TemplatedType gets the type of the captured prototype. It is nil for empty templates.
func (t *Template) TemplatedType() reflect.Type {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.templatedType
}

// IsEmpty checks if the template has no captured prototype.
func (t *Template) IsEmpty() bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot == nil
}

// Snapshot gets the copy of the captured prototype document.
func (t *Template) Snapshot() *document.Element {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if t.snapshot == nil {
		return nil
	}
	return t.snapshot.Clone()
}

// Errors gets the errors of the last capture.
func (t *Template) Errors() errors.MultiError {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.errs
}

// InitializeFrom captures the prototype 'proto'. The prototype must be assignable to the base type.
// If the prototype is Observable it is recaptured on each change until the template is closed
// or initialized from another prototype.
func (t *Template) InitializeFrom(proto interface{}) bool {
	if proto == nil || !reflect.TypeOf(proto).AssignableTo(t.baseType) {
		t.lock.Lock()
		t.errs = errors.MultiError{errors.Newf(class.TemplateCaptureType, "prototype: '%T' is not assignable to: '%s'", proto, t.baseType)}
		t.lock.Unlock()
		return false
	}
	if !t.capture(proto) {
		return false
	}

	t.Close()
	t.lock.Lock()
	defer t.lock.Unlock()
	t.editor = proto
	if observable, ok := proto.(Observable); ok {
		t.cancel = observable.Observe(func(property string) {
			logger.Debug3f("Prototype property: '%s' changed, recapturing template", property)
			t.capture(proto)
		})
	}
	return true
}

// Create creates new object graph from the captured snapshot. Each call creates fully independent graph.
// Empty template creates nil value.
func (t *Template) Create() (interface{}, error) {
	t.lock.RLock()
	snapshot, templated := t.snapshot, t.templatedType
	t.lock.RUnlock()

	if snapshot == nil {
		return nil, nil
	}
	v, errs := t.engine.Deserialize(snapshot, templated)
	if len(errs) > 0 {
		return nil, errors.Wrap(class.TemplateCreateFailed, errs, "creating object from template failed")
	}
	return v.Interface(), nil
}

// Clone creates the copy of the template. The copy doesn't observe the prototype.
func (t *Template) Clone() *Template {
	t.lock.RLock()
	defer t.lock.RUnlock()

	c := &Template{engine: t.engine, baseType: t.baseType, templatedType: t.templatedType}
	if t.snapshot != nil {
		c.snapshot = t.snapshot.Clone()
	}
	return c
}

// Close stops observing the prototype.
func (t *Template) Close() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.editor = nil
}

func (t *Template) capture(proto interface{}) bool {
	snapshot, errs := t.engine.Serialize(proto)

	t.lock.Lock()
	defer t.lock.Unlock()
	t.errs = errs
	if snapshot == nil || len(errs) > 0 {
		if len(errs) == 0 {
			t.errs = errors.MultiError{errors.New(class.TemplateCaptureFailed, "prototype could not be captured")}
		}
		return false
	}
	t.snapshot = snapshot
	t.templatedType = reflect.TypeOf(proto)
	return true
}
