package contract

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
	"github.com/neuronlabs/xgraph/mapping"
)

var logger = log.NewModuleLogger("contract")

// Query is the input of the contract selection. Only the set fields are taken into account.
type Query struct {
	// Element is the element being read.
	Element *document.Element
	// Value is the runtime value being written.
	Value reflect.Value
	// Type is the effective type of the value.
	Type reflect.Type
	// Declared is the declared type of the value slot.
	Declared reflect.Type
	// Property is the property holding the value.
	Property *mapping.Property
}

// Registry is the ordered set of the contracts. The registration order resolves
// the equal priorities.
type Registry struct {
	contracts  []Contract
	properties []PropertyContract
	byName     map[string]Contract

	lock sync.RWMutex
}

// NewRegistry creates new registry with provided value 'contracts'.
func NewRegistry(contracts ...Contract) *Registry {
	r := &Registry{byName: map[string]Contract{}}
	// the names are unique, so the registration could fail only with duplicates.
	if err := r.Register(contracts...); err != nil {
		log.Panicf("Creating registry failed: %v", err)
	}
	return r
}

// Register appends the value 'contracts' to the registry.
func (r *Registry) Register(contracts ...Contract) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, c := range contracts {
		if _, ok := r.byName[c.Name()]; ok {
			return errors.Newf(class.ConfigValueInvalid, "contract: '%s' is already registered", c.Name())
		}
		r.byName[c.Name()] = c
		r.contracts = append(r.contracts, c)
		logger.Debug3f("Registered contract: '%s'", c.Name())
	}
	return nil
}

// RegisterProperty appends the property 'contracts' to the registry.
func (r *Registry) RegisterProperty(contracts ...PropertyContract) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.properties = append(r.properties, contracts...)
}

// Contracts lists the registered value contracts in the registration order.
func (r *Registry) Contracts() []Contract {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]Contract(nil), r.contracts...)
}

// PropertyContracts lists the registered property contracts in the registration order.
func (r *Registry) PropertyContracts() []PropertyContract {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]PropertyContract(nil), r.properties...)
}

// Contract gets the contract by its name.
func (r *Registry) Contract(name string) (Contract, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// Select selects the contract with the highest support for the query 'q'.
// If the query property forces the contract by the 'contract' marker, it is selected
// with the LevelAttribute priority. Returns nil contract if no contract supports the query.
func (r *Registry) Select(q Query, s *Session) (Contract, Match) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if q.Property != nil {
		if name := q.Property.MarkerValue(mapping.MarkerContract); name != "" {
			forced, ok := r.byName[name]
			if !ok {
				return nil, Match{}
			}
			support := evaluate(forced, q, s)
			if !support.Supported() {
				support.Match = Match{Type: q.Type}
			}
			return forced, complete(support.Match, q)
		}
	}

	var (
		best    Contract
		support Support
	)
	for _, c := range r.contracts {
		if h, ok := c.(Hidden); ok && h.Hidden() {
			continue
		}
		current := evaluate(c, q, s)
		if !current.Supported() {
			continue
		}
		if best == nil || current.Compare(support.Priority) > 0 {
			best, support = c, current
		}
	}
	if best == nil {
		return nil, Match{}
	}
	logger.Debug3f("Selected contract: '%s' with priority: %s", best.Name(), support.Priority)
	return best, complete(support.Match, q)
}

// SelectProperty selects the property contract with the highest support for the property 'p'.
func (r *Registry) SelectProperty(p *mapping.Property, s *Session) PropertyContract {
	r.lock.RLock()
	defer r.lock.RUnlock()

	var (
		best     PropertyContract
		priority Priority
	)
	for _, c := range r.properties {
		support := c.CanManageProperty(p, s)
		if !support.Supported() {
			continue
		}
		if best == nil || support.Compare(priority) > 0 {
			best, priority = c, support.Priority
		}
	}
	return best
}

// evaluate gets the best support of the contract 'c' over the query inputs.
func evaluate(c Contract, q Query, s *Session) Support {
	var best Support
	if q.Element != nil {
		best = higher(best, c.CanManageElement(q.Element, s))
	}
	if q.Value.IsValid() {
		best = higher(best, c.CanManageValue(q.Value, s))
	}
	if q.Type != nil {
		best = higher(best, c.CanManageType(q.Type, s))
	}
	return best
}

func higher(current, other Support) Support {
	if other.Compare(current.Priority) > 0 {
		return other
	}
	return current
}

func complete(m Match, q Query) Match {
	if m.Type == nil {
		m.Type = q.Type
	}
	if m.Declared == nil {
		m.Declared = q.Declared
	}
	if m.Property == nil {
		m.Property = q.Property
	}
	return m
}
