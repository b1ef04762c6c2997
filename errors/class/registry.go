package class

import (
	"errors"
	"sync"
)

var registry = newClassRegistry()

// Major is a 7 bit top level error classification.
type Major uint8

// Name returns the major registered name.
func (m Major) Name() string {
	return registry.name(uint32(m) << (32 - majorBitSize))
}

// Description gets the major registered description.
func (m Major) Description() string {
	return registry.description(uint32(m) << (32 - majorBitSize))
}

// RegisterMinor registers the minor classification for given Major 'm'.
// The 'name' must be unique within given major.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if m == 0 || m > maxMajorValue {
		return Minor{}, errors.New("major out of bounds")
	}
	value, err := registry.next(uint32(m)<<(32-majorBitSize), maxMinorValue, name, description...)
	if err != nil {
		return Minor{}, err
	}
	return Minor{value: uint16(value), major: m}, nil
}

// MustRegisterMinor registers the minor and panics on failure.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// Minor is a mid level error classification unique within given major.
type Minor struct {
	value uint16
	major Major
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Value gets the minor's value.
func (m Minor) Value() uint16 {
	return m.value
}

// Name gets the minor registered name.
func (m Minor) Name() string {
	return registry.name(m.key())
}

// Description gets the minor registered description.
func (m Minor) Description() string {
	return registry.description(m.key())
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if m.value == 0 {
		return Index{}, errors.New("invalid minor provided")
	}
	value, err := registry.next(m.key(), maxIndexValue, name, description...)
	if err != nil {
		return Index{}, err
	}
	return Index{value: uint16(value), minor: m}, nil
}

// MustRegisterIndex registers the index and panics on failure.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

func (m Minor) key() uint32 {
	return uint32(m.major)<<(32-majorBitSize) | uint32(m.value)<<indexBitSize
}

// Index is the lowest level error classification.
type Index struct {
	value uint16
	minor Minor
}

// Class gets the index related class.
func (i Index) Class() Class {
	return Class(i.minor.key() | uint32(i.value))
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index registered name.
func (i Index) Name() string {
	return registry.name(uint32(i.Class()))
}

// Description gets the index registered description.
func (i Index) Description() string {
	return registry.description(uint32(i.Class()))
}

// RegisterMajor registers new major error classification with provided
// 'name', and optional 'description'.
func RegisterMajor(name string, description ...string) (Major, error) {
	value, err := registry.next(0, maxMajorValue, name, description...)
	if err != nil {
		return 0, err
	}
	return Major(value), nil
}

// MustRegisterMajor registers the major and panics on failure.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

type classEntry struct {
	name        string
	description string
}

// classRegistry keeps the names of majors, minors and indexes keyed by their
// packed class value. The 'counters' are kept per parent key.
type classRegistry struct {
	entries  map[uint32]classEntry
	counters map[uint32]uint32
	unique   map[uint32]map[string]struct{}
	lock     sync.RWMutex
}

func newClassRegistry() *classRegistry {
	return &classRegistry{
		entries:  map[uint32]classEntry{},
		counters: map[uint32]uint32{},
		unique:   map[uint32]map[string]struct{}{},
	}
}

func (r *classRegistry) next(parent uint32, max uint32, name string, description ...string) (uint32, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	names, ok := r.unique[parent]
	if !ok {
		names = map[string]struct{}{}
		r.unique[parent] = names
	}
	if _, exists := names[name]; exists {
		return 0, errors.New("name already registered: " + name)
	}
	value := r.counters[parent] + 1
	if value > max {
		return 0, errors.New("too many classifications registered")
	}
	r.counters[parent] = value
	names[name] = struct{}{}

	entry := classEntry{name: name}
	if len(description) > 0 {
		entry.description = description[0]
	}
	r.entries[r.key(parent, value)] = entry
	return value, nil
}

func (r *classRegistry) key(parent, value uint32) uint32 {
	switch {
	case parent == 0:
		return value << (32 - majorBitSize)
	case parent&^(uint32(maxMajorValue)<<(32-majorBitSize)) == 0:
		return parent | value<<indexBitSize
	default:
		return parent | value
	}
}

func (r *classRegistry) name(key uint32) string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.entries[key].name
}

func (r *classRegistry) description(key uint32) string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.entries[key].description
}

func (r *classRegistry) reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.entries = map[uint32]classEntry{}
	r.counters = map[uint32]uint32{}
	r.unique = map[uint32]map[string]struct{}{}
}
