package contract

import (
	"reflect"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/mapping"
)

// Contract is the strategy that creates, reads and writes values of some shape.
// The contracts must be stateless. All the context matched by the support checks is passed
// to the operations within the Match.
type Contract interface {
	// Name is the unique contract name, used by the 'contract' property marker.
	Name() string
	// CanManageType checks the support for the type 't'.
	CanManageType(t reflect.Type, s *Session) Support
	// CanManageValue checks the support for the runtime value 'v'.
	CanManageValue(v reflect.Value, s *Session) Support
	// CanManageElement checks the support for the shape of the element 'e'.
	CanManageElement(e *document.Element, s *Session) Support
	// NeedsCreate defines if the value must be created by the contract before being read.
	// Contracts that don't need create read the values in place.
	NeedsCreate(m Match) bool
	// Create creates the value for the element 'e'.
	Create(m Match, e *document.Element, s *Session) (reflect.Value, error)
	// Read reads the element 'e' into the value 'v' and returns the result value.
	Read(m Match, v reflect.Value, e *document.Element, s *Session) (reflect.Value, error)
	// Write writes the value 'v' into the element 'e'.
	Write(m Match, v reflect.Value, e *document.Element, s *Session) error
}

// Hidden is the interface implemented by the contracts which are not taken into account
// by the registry selection unless forced by the 'contract' property marker.
type Hidden interface {
	Hidden() bool
}

// PropertyContract is the contract that reads and writes single property of an object.
type PropertyContract interface {
	// Name is the unique contract name.
	Name() string
	// CanManageProperty checks the support for the property 'p'.
	CanManageProperty(p *mapping.Property, s *Session) Support
	// WriteProperty writes the property 'p' of the 'owner' as the child of the 'parent' element.
	WriteProperty(owner reflect.Value, p *mapping.Property, parent *document.Element, s *Session) error
	// ReadProperty reads the property 'p' of the 'owner' from the element 'e'.
	ReadProperty(owner reflect.Value, p *mapping.Property, e *document.Element, s *Session) error
}

// Base is the contract base that doesn't support anything. It is meant to be embedded
// by the contracts that implement only some of the support checks.
type Base struct{}

// CanManageType implements Contract interface.
func (Base) CanManageType(reflect.Type, *Session) Support {
	return NotSupported
}

// CanManageValue implements Contract interface.
func (Base) CanManageValue(reflect.Value, *Session) Support {
	return NotSupported
}

// CanManageElement implements Contract interface.
func (Base) CanManageElement(*document.Element, *Session) Support {
	return NotSupported
}

// NeedsCreate implements Contract interface.
func (Base) NeedsCreate(Match) bool {
	return true
}

// Create implements Contract interface. It instantiates the matched type.
func (Base) Create(m Match, _ *document.Element, _ *Session) (reflect.Value, error) {
	return mapping.Instantiate(m.Type)
}
