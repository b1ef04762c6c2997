// Package xgraph is the object graph serializer. It writes arbitrary Go object graphs into
// element tree documents and reads them back, preserving shared references and cycles.
//
// The serialization of each value is managed by the contracts registered within the serializer.
// The contracts compete for each value by the priority of their support, so that the more specific
// contract wins over the generic one. The serializer comes with the default contracts for the scalars,
// enums, nullables, tuples, collections, objects, references, external documents and templates.
//
//	s, err := xgraph.New(xgraph.WithModels(&Root{}))
//	if err != nil {
//		...
//	}
//	data, err := s.Marshal(root)
package xgraph

import (
	"reflect"

	"github.com/neuronlabs/xgraph/config"
	"github.com/neuronlabs/xgraph/contract"
	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
	"github.com/neuronlabs/xgraph/mapping"
	"github.com/neuronlabs/xgraph/template"
)

// Serializer is the main structure that binds the serialization engine with its configuration.
type Serializer struct {
	engine *contract.Engine
	cfg    *config.Config
}

// New creates new serializer with provided options.
func New(options ...Option) (*Serializer, error) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	engine, err := contract.NewEngine(o.Config)
	if err != nil {
		return nil, err
	}
	if level := log.ParseLevel(o.Config.LogLevel); level != log.LUNKNOWN {
		if err = log.SetLevel(level); err != nil {
			return nil, err
		}
	}
	if o.Registry != nil {
		engine.Registry = o.Registry
	} else if err = engine.Registry.Register(template.Contract{}); err != nil {
		return nil, err
	}
	if err = engine.Registry.Register(o.Contracts...); err != nil {
		return nil, err
	}
	engine.Registry.RegisterProperty(o.PropertyContracts...)
	if o.Types != nil {
		engine.Types = o.Types
	}
	if o.Fs != nil {
		engine.Fs = o.Fs
	}
	if err = engine.Types.Register(o.Models...); err != nil {
		return nil, err
	}
	log.Debugf("New serializer created with %d contracts", len(engine.Registry.Contracts()))
	return &Serializer{engine: engine, cfg: o.Config}, nil
}

// Engine gets the serialization engine.
func (s *Serializer) Engine() *contract.Engine {
	return s.engine
}

// Config gets the serializer configuration.
func (s *Serializer) Config() *config.Config {
	return s.cfg
}

// Types gets the type registry.
func (s *Serializer) Types() *mapping.Types {
	return s.engine.Types
}

// RegisterModels registers the types of provided models along with the types of their fields.
func (s *Serializer) RegisterModels(models ...interface{}) error {
	return s.engine.Types.Register(models...)
}

// RegisterEnum registers the enum members. All the members must be of the same named integer type
// implementing fmt.Stringer.
func (s *Serializer) RegisterEnum(members ...interface{}) (*mapping.Enum, error) {
	return s.engine.Types.RegisterEnum(members...)
}

// NewTemplate creates new empty template for the 'base' type.
func (s *Serializer) NewTemplate(base reflect.Type) *template.Template {
	return template.New(s.engine, base)
}

// Serialize writes the object graph of 'v' into the element tree.
// All the errors found during the serialization are returned as errors.MultiError.
func (s *Serializer) Serialize(v interface{}) (*document.Element, error) {
	root, errs := s.engine.Serialize(v)
	return root, errs.OrNil()
}

// Deserialize reads the object graph from the 'root' element into the value pointed by 'into'.
// The partially read graph is set even if the errors occurred.
func (s *Serializer) Deserialize(root *document.Element, into interface{}) error {
	target, err := targetValue(into)
	if err != nil {
		return err
	}
	v, errs := s.engine.Deserialize(root, target.Type())
	setTarget(target, v)
	return errs.OrNil()
}

// Marshal serializes 'v' into the document text.
func (s *Serializer) Marshal(v interface{}) ([]byte, error) {
	root, err := s.Serialize(v)
	if root == nil {
		return nil, err
	}
	data, encErr := document.Marshal(root, s.engine.Indent)
	if encErr != nil {
		return nil, encErr
	}
	return data, err
}

// Unmarshal deserializes the document text into the value pointed by 'into'.
func (s *Serializer) Unmarshal(data []byte, into interface{}) error {
	root, err := document.Unmarshal(data, "")
	if err != nil {
		return err
	}
	return s.Deserialize(root, into)
}

// SaveFile serializes 'v' into the file at 'path'. The external objects within the graph
// are written as the references relative to the 'path' directory.
func (s *Serializer) SaveFile(path string, v interface{}) error {
	return s.engine.WriteFile(path, v).OrNil()
}

// LoadFile deserializes the file at 'path' into the value pointed by 'into'.
// The external documents are loaded once and shared within the whole graph.
func (s *Serializer) LoadFile(path string, into interface{}) error {
	_, err := s.LoadFileResolver(path, into)
	return err
}

// LoadFileResolver deserializes the file at 'path' and returns the resolver with all the external
// documents loaded on the way.
func (s *Serializer) LoadFileResolver(path string, into interface{}) (*contract.ExternalResolver, error) {
	target, err := targetValue(into)
	if err != nil {
		return nil, err
	}
	v, resolver, errs := s.engine.ReadFile(path, target.Type())
	setTarget(target, v)
	return resolver, errs.OrNil()
}

func targetValue(into interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(into)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, errors.Newf(class.MappingTypeInvalid, "deserialization target must be a non nil pointer, got: '%T'", into)
	}
	return v.Elem(), nil
}

func setTarget(target, v reflect.Value) {
	if !v.IsValid() {
		return
	}
	switch {
	case v.Type().AssignableTo(target.Type()):
		target.Set(v)
	case v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Type().AssignableTo(target.Type()):
		target.Set(v.Elem())
	}
}
