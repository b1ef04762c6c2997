// Package mapping is the object property access layer used by the serialization contracts.
//
// It describes the struct types as a set of properties with their markers defined
// in the 'xgraph' struct tag, gives access to the properties and (also unexported) fields
// by name, instantiates types and resolves the types by their names.
//
// The struct tag syntax is:
//
//	type Model struct {
//		Field string `xgraph:"name=custom;order=2;readonly"`
//	}                      ^             ^      ^
//	                  marker=value  separator  flag marker
package mapping
