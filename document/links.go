package document

import (
	"sort"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Links are the identity, reference and external path markers of a single document.
type Links struct {
	File string
	// IDs are the elements defining the ids, mapped by the id value.
	IDs map[string]*Element
	// Refs are the elements referencing the ids, in the document order.
	Refs []*Element
	// Externals are the elements with the external document paths, in the document order.
	Externals []*Element

	refCount map[string]int
	errs     errors.MultiError
}

// ScanLinks collects the links of the element tree 'root' decoded from the 'file'.
// The elements for which 'isolated' returns true are scanned without their descendants.
// These hold separate documents with their own ids. The 'isolated' might be nil.
func ScanLinks(root *Element, file string, isolated func(*Element) bool) *Links {
	l := &Links{File: file, IDs: map[string]*Element{}, refCount: map[string]int{}}
	root.Walk(func(e *Element) bool {
		if id, ok := e.Attr(AttrID); ok {
			if _, exists := l.IDs[id]; exists {
				l.errs = append(l.errs, errors.Newf(class.DocumentLinksDuplicateID, "id: '%s' is already defined", id).SetLocation(l.location(e)))
			} else {
				l.IDs[id] = e
			}
		}
		if ref, ok := e.Attr(AttrRef); ok {
			l.Refs = append(l.Refs, e)
			if _, defined := l.IDs[ref]; !defined {
				l.errs = append(l.errs, errors.Newf(class.DocumentLinksUnknownRef, "reference to undefined id: '%s'", ref).SetLocation(l.location(e)))
			}
			l.refCount[ref]++
		}
		if _, ok := e.Attr(AttrPath); ok {
			l.Externals = append(l.Externals, e)
		}
		return isolated == nil || !isolated(e)
	})
	return l
}

// Errors lists the duplicated ids and the references to the ids not defined before them.
func (l *Links) Errors() errors.MultiError {
	return l.errs
}

// RefCount gets the number of references to the 'id'.
func (l *Links) RefCount(id string) int {
	return l.refCount[id]
}

// SortedIDs lists the defined ids in the document order.
func (l *Links) SortedIDs() []string {
	ids := make([]string, 0, len(l.IDs))
	for id := range l.IDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := l.IDs[ids[i]], l.IDs[ids[j]]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Paths lists the unique external document paths in the document order.
func (l *Links) Paths() []string {
	var (
		paths []string
		seen  = map[string]struct{}{}
	)
	for _, e := range l.Externals {
		path := e.Attrs[AttrPath]
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths
}

func (l *Links) location(e *Element) errors.Location {
	return errors.Location{File: l.File, Line: e.Line, Column: e.Column}
}
