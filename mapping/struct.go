package mapping

import (
	"reflect"
	"sort"
	"strconv"
	"sync"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Struct is the described struct type with its serializable properties.
type Struct struct {
	Type reflect.Type

	properties []*Property
	byName     map[string]*Property
	byElement  map[string]*Property
}

// Properties gets the properties sorted by their order and name.
func (s *Struct) Properties() []*Property {
	return s.properties
}

// Property gets the property by its go field name.
func (s *Struct) Property(name string) (*Property, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// ElementProperty gets the property stored in the element with given 'name'.
func (s *Struct) ElementProperty(name string) (*Property, bool) {
	p, ok := s.byElement[name]
	return p, ok
}

// Mapper describes the struct types and caches the descriptions.
type Mapper struct {
	naming NamingConvention
	cache  sync.Map
}

// NewMapper creates new struct mapper using provided naming convention for the element names.
func NewMapper(naming NamingConvention) *Mapper {
	return &Mapper{naming: naming}
}

// NamingConvention gets the mapper naming convention.
func (m *Mapper) NamingConvention() NamingConvention {
	return m.naming
}

// Describe gets the description of the struct type 't'. Pointers to structs are dereferenced.
func (m *Mapper) Describe(t reflect.Type) (*Struct, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(class.MappingTypeInvalid, "type: '%s' is not a struct", t)
	}
	if cached, ok := m.cache.Load(t); ok {
		return cached.(*Struct), nil
	}

	s := &Struct{
		Type:      t,
		byName:    map[string]*Property{},
		byElement: map[string]*Property{},
	}
	if err := m.describeFields(s, t, nil); err != nil {
		return nil, err
	}
	sort.SliceStable(s.properties, func(i, j int) bool {
		pi, pj := s.properties[i], s.properties[j]
		if pi.Order != pj.Order {
			return pi.Order < pj.Order
		}
		return pi.Name < pj.Name
	})
	logger.Debug3f("Described struct: '%s' with %d properties", t, len(s.properties))

	actual, _ := m.cache.LoadOrStore(t, s)
	return actual.(*Struct), nil
}

func (m *Mapper) describeFields(s *Struct, t reflect.Type, index []int) error {
	var embedded []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		markers := ParseMarkers(field)
		if len(markers) == 1 && markers[0].Key == MarkerSkip {
			continue
		}

		fieldIndex := append(append([]int(nil), index...), i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && !hasMarker(markers, MarkerName) {
			field.Index = fieldIndex
			embedded = append(embedded, field)
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Ptr {
			continue
		}

		exported := field.PkgPath == ""
		if !exported && !hasMarker(markers, MarkerInclude) {
			continue
		}

		p := &Property{
			Name:     field.Name,
			Type:     field.Type,
			Index:    fieldIndex,
			Exported: exported,
			owner:    s.Type,
			markers:  markers,
		}
		if name := markerValue(markers, MarkerName); name != "" {
			p.ElementName = name
		} else {
			p.ElementName = m.naming.Name(field.Name)
		}
		if order := markerValue(markers, MarkerOrder); order != "" {
			n, err := strconv.Atoi(order)
			if err != nil {
				return errors.Newf(class.MappingPropertyValue, "invalid order marker: '%s' for field: '%s.%s'", order, t, field.Name)
			}
			p.Order = n
		}
		// fields closer to the root shadow the embedded ones.
		if _, ok := s.byName[p.Name]; ok {
			continue
		}
		if other, ok := s.byElement[p.ElementName]; ok {
			return errors.Newf(class.MappingPropertyValue, "fields: '%s' and '%s' share the element name: '%s'", other, p, p.ElementName)
		}
		s.byName[p.Name] = p
		s.byElement[p.ElementName] = p
		s.properties = append(s.properties, p)
	}

	for _, field := range embedded {
		if err := m.describeFields(s, field.Type, field.Index); err != nil {
			return err
		}
	}
	return nil
}

func hasMarker(markers []*Marker, key string) bool {
	for _, m := range markers {
		if m.Key == key {
			return true
		}
	}
	return false
}

func markerValue(markers []*Marker, key string) string {
	for _, m := range markers {
		if m.Key == key {
			return m.Value()
		}
	}
	return ""
}
