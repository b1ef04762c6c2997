package contract

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/afero"

	"github.com/neuronlabs/xgraph/config"
	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

// Engine is the serialization engine. It binds the contract registry with the type registry,
// the struct mapper and the file system used by the external documents.
// The engine is safe for concurrent use as long as its fields are not changed.
type Engine struct {
	Registry *Registry
	Types    *mapping.Types
	Mapper   *mapping.Mapper
	Fs       afero.Fs

	// ReferenceBase is the first reference id in the session.
	ReferenceBase int
	// Indent is the number of spaces used to indent the written documents.
	Indent int
	// StrictProperties records the errors for the elements not matching any property.
	StrictProperties bool
	// FileExtension is appended to the external document paths written without an extension.
	FileExtension string
}

// NewEngine creates new engine for given config. If the 'cfg' is nil the default config is used.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	naming, err := mapping.ParseNamingConvention(cfg.NamingConvention)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Registry:         Default(),
		Types:            mapping.NewTypes(),
		Mapper:           mapping.NewMapper(naming),
		Fs:               afero.NewOsFs(),
		ReferenceBase:    cfg.ReferenceBase,
		Indent:           cfg.Indent,
		StrictProperties: cfg.StrictProperties,
		FileExtension:    cfg.FileExtension,
	}, nil
}

// NewSession creates new root session for the document at 'file'. The 'file' might be empty.
func (e *Engine) NewSession(file string) *Session {
	s := newSession(e, nil)
	if file != "" {
		s.File = file
		s.Directory = filepath.Dir(file)
	}
	return s
}

// Serialize writes the object graph of 'v' into the element tree.
func (e *Engine) Serialize(v interface{}) (*document.Element, errors.MultiError) {
	s := e.NewSession("")
	root, _ := s.Serialize(reflect.ValueOf(v))
	return root, s.Errors()
}

// Deserialize reads the object graph of the 'declared' type from the 'root' element.
// The 'declared' type might be nil, then the root must have the type marker.
func (e *Engine) Deserialize(root *document.Element, declared reflect.Type) (reflect.Value, errors.MultiError) {
	s := e.NewSession("")
	v, _ := s.Deserialize(root, declared)
	return v, s.Errors()
}

// WriteFile serializes the object graph of 'v' into the file at 'path'.
// The external references are written relative to the directory of the 'path'.
func (e *Engine) WriteFile(path string, v interface{}) errors.MultiError {
	s := e.NewSession(path)
	root, ok := s.Serialize(reflect.ValueOf(v))
	if !ok {
		return s.Errors()
	}
	buf := &bytes.Buffer{}
	if err := document.NewEncoder(buf, e.Indent).Encode(root); err != nil {
		s.AddError(err, nil)
		return s.Errors()
	}
	if err := afero.WriteFile(e.Fs, path, buf.Bytes(), 0644); err != nil {
		s.AddError(errors.Wrapf(class.CommonFileWrite, err, "writing file: '%s' failed", path), nil)
	}
	return s.Errors()
}

// ReadFile deserializes the object graph of the 'declared' type from the file at 'path'.
func (e *Engine) ReadFile(path string, declared reflect.Type) (reflect.Value, *ExternalResolver, errors.MultiError) {
	s := e.NewSession(path)
	data, err := afero.ReadFile(e.Fs, path)
	if err != nil {
		s.AddError(errors.Wrapf(class.CommonFileOpen, err, "reading file: '%s' failed", path), nil)
		return reflect.Value{}, s.Resolver(), s.Errors()
	}
	root, err := document.Unmarshal(data, path)
	if err != nil {
		s.AddError(err, nil)
		return reflect.Value{}, s.Resolver(), s.Errors()
	}
	v, _ := s.Deserialize(root, declared)
	return v, s.Resolver(), s.Errors()
}

// Serialize writes the root value 'v' into new element. The root element always carries the type marker.
// The result is nil if the root could not be written.
func (s *Session) Serialize(v reflect.Value) (*document.Element, bool) {
	if !v.IsValid() {
		s.AddError(errors.New(class.SerializationWriteUnsupported, "can't serialize nil value"), nil)
		return nil, false
	}
	root := document.New(s.rootName(v.Type()))
	if !s.Write(v, nil, nil, root) {
		return nil, false
	}
	return root, true
}

// Deserialize reads the root element. The root type could not be omitted, so that the failures
// of resolving or instantiating the root abort the read.
func (s *Session) Deserialize(root *document.Element, declared reflect.Type) (reflect.Value, bool) {
	if declared != nil {
		if err := s.engine.Types.Register(declared); err != nil {
			s.AddError(err, root)
		}
	}
	if declared == nil && !root.HasAttr(document.AttrType) && !root.HasAttr(document.AttrRef) {
		s.AddError(errors.Newf(class.SerializationMissingAttribute, "root element: '%s' has no type marker", root.Name), root)
		return reflect.Value{}, false
	}
	return s.Read(root, declared, nil, reflect.Value{})
}

func (s *Session) rootName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "value"
	}
	return s.engine.Mapper.NamingConvention().Name(name)
}
