// Package document defines the Element tree used as the wire representation of the
// serialized object graphs, together with its canonical text encoding.
//
// The text form is an XML subset: elements, attributes and character data. Attributes
// are unordered in the tree and written in a canonical order, so that encoding the same
// tree twice always results with the same bytes.
package document
