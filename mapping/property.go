package mapping

import (
	"reflect"
)

// Property is the description of a single struct field taking part in serialization.
type Property struct {
	// Name is the go field name of the property.
	Name string
	// ElementName is the name of the document element holding the property value.
	ElementName string
	// Type is the declared field type.
	Type reflect.Type
	// Index is the field index sequence in the owner struct, embedded structs included.
	Index []int
	// Exported defines if the field is exported.
	Exported bool
	// Order is the value of the 'order' marker.
	Order int

	owner   reflect.Type
	markers []*Marker
}

// Owner gets the struct type that defines the property.
func (p *Property) Owner() reflect.Type {
	return p.owner
}

// Markers gets the property markers.
func (p *Property) Markers() []*Marker {
	return p.markers
}

// HasMarker checks if the property has the marker with given 'key'.
func (p *Property) HasMarker(key string) bool {
	_, ok := p.Marker(key)
	return ok
}

// Marker gets the property marker with given 'key'.
func (p *Property) Marker(key string) (*Marker, bool) {
	for _, m := range p.markers {
		if m.Key == key {
			return m, true
		}
	}
	return nil, false
}

// MarkerValue gets the first value of the marker with given 'key'.
func (p *Property) MarkerValue(key string) string {
	m, ok := p.Marker(key)
	if !ok {
		return ""
	}
	return m.Value()
}

// IsReadOnly checks if the property is only written and never set on read.
func (p *Property) IsReadOnly() bool {
	return p.HasMarker(MarkerReadOnly)
}

// IsWriteOnly checks if the property is never written.
func (p *Property) IsWriteOnly() bool {
	return p.HasMarker(MarkerWriteOnly)
}

// String implements fmt.Stringer interface.
func (p *Property) String() string {
	if p.owner == nil {
		return p.Name
	}
	return p.owner.String() + "." + p.Name
}
