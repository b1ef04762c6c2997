// Package contract contains the serialization contracts, the contract registry with its
// priority based selection and the serialization session that tracks the object references.
//
// A contract knows how to create, read and write one kind of value shape. For each node the
// registry asks every registered contract for its support priority and selects the best one.
// The priority levels in the increasing order are:
//
//	LevelDefault   - reflective fallback, i.e. any struct
//	LevelType      - type specific contracts, more specific types have higher sub priority
//	LevelElement   - element shape, i.e. 'ref', 'null' or 'path' attributes
//	LevelAttribute - contract forced by the property marker
//
// Equal priorities are resolved by the registration order.
package contract
