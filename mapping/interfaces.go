package mapping

// ExternalObject is the interface implemented by the objects stored in separate documents.
// Non empty path makes the object to be written as an external reference.
type ExternalObject interface {
	ExternalPath() string
}

// ExternalPathSetter is the interface implemented by the external objects that want to know
// the path they were loaded from.
type ExternalPathSetter interface {
	SetExternalPath(path string)
}
