package contract

import (
	"path/filepath"
	"reflect"

	"github.com/spf13/afero"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/mapping"
)

// ExternalResolver maps the absolute paths of the external documents to the objects loaded from them.
// It is shared by the session and all its nested sessions, so that the same document is loaded once.
type ExternalResolver struct {
	objects map[string]reflect.Value
	loading map[string]struct{}
	loads   int
}

// NewExternalResolver creates new external reference resolver.
func NewExternalResolver() *ExternalResolver {
	return &ExternalResolver{
		objects: map[string]reflect.Value{},
		loading: map[string]struct{}{},
	}
}

// Resolve gets the object loaded from the document at 'path'.
func (r *ExternalResolver) Resolve(path string) (reflect.Value, bool) {
	v, ok := r.objects[path]
	return v, ok
}

// Register registers the object 'v' loaded from the 'path'.
func (r *ExternalResolver) Register(path string, v reflect.Value) {
	r.objects[path] = v
}

// Loads gets the number of the external documents loaded by the resolver.
func (r *ExternalResolver) Loads() int {
	return r.loads
}

// Paths lists the paths of the loaded documents.
func (r *ExternalResolver) Paths() []string {
	paths := make([]string, 0, len(r.objects))
	for path := range r.objects {
		paths = append(paths, path)
	}
	return paths
}

// ExternalPath gets the full path of the external reference 'path' written in the document.
// The relative paths are resolved against the session directory. The paths without
// an extension get the engine file extension.
func (s *Session) ExternalPath(path string) string {
	p := filepath.FromSlash(path)
	if filepath.Ext(p) == "" && s.engine.FileExtension != "" {
		p += s.engine.FileExtension
	}
	if !filepath.IsAbs(p) && s.Directory != "" {
		p = filepath.Join(s.Directory, p)
	}
	return filepath.Clean(p)
}

// RelativePath gets the slash separated path of the external document relative to the session directory.
// The relative 'path' is taken as relative to the working directory, the same as the directory itself.
// If only the directory is absolute the 'path' is already relative to the document and is left unchanged.
func (s *Session) RelativePath(path string) string {
	p := filepath.FromSlash(path)
	dir := s.Directory
	if dir == "" {
		return filepath.ToSlash(p)
	}
	if filepath.IsAbs(p) != filepath.IsAbs(dir) {
		if !filepath.IsAbs(p) {
			return filepath.ToSlash(p)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return filepath.ToSlash(p)
		}
		dir = abs
	}
	if rel, err := filepath.Rel(dir, p); err == nil {
		p = rel
	}
	return filepath.ToSlash(p)
}

// resolverKey gets the absolute form of the 'full' path, so that the same document
// is found no matter of the directory it was referenced from.
func resolverKey(full string) string {
	if abs, err := filepath.Abs(full); err == nil {
		return abs
	}
	return full
}

// LoadExternal loads the object of the 'declared' type from the external document at 'path'.
// The document is read in a nested session that shares the resolver, so that repeated
// references to the same document resolve to the same object.
func (s *Session) LoadExternal(path string, declared reflect.Type) (reflect.Value, error) {
	full := s.ExternalPath(path)
	key := resolverKey(full)
	if v, ok := s.resolver.Resolve(key); ok {
		logger.Debug3f("External document: '%s' already loaded", full)
		return v, nil
	}
	if _, ok := s.resolver.loading[key]; ok {
		return reflect.Value{}, errors.Newf(class.SerializationReferenceExternal, "cyclic external reference to: '%s'", path)
	}
	s.resolver.loading[key] = struct{}{}
	defer delete(s.resolver.loading, key)

	data, err := afero.ReadFile(s.engine.Fs, full)
	if err != nil {
		return reflect.Value{}, errors.Wrapf(class.SerializationReferenceExternal, err, "reading external document: '%s' failed", path)
	}
	doc, err := document.Unmarshal(data, full)
	if err != nil {
		return reflect.Value{}, err
	}

	nested := newSession(s.engine, s.resolver)
	nested.File = full
	nested.Directory = filepath.Dir(full)
	v, ok := nested.Deserialize(doc, declared)
	s.errs = append(s.errs, nested.errs...)
	s.resolver.loads++
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationReferenceExternal, "external document: '%s' could not be read", path)
	}
	if setter, ok := v.Interface().(mapping.ExternalPathSetter); ok {
		setter.SetExternalPath(full)
	}
	s.resolver.Register(key, v)
	logger.Debugf("Loaded external document: '%s'", full)
	return v, nil
}
