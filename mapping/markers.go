package mapping

import (
	"reflect"
	"strings"
)

// Tag is the struct tag key used to define the property markers.
const Tag = "xgraph"

// Property markers.
const (
	// MarkerSkip excludes the field from the properties.
	MarkerSkip = "-"
	// MarkerName sets the element name of the property.
	MarkerName = "name"
	// MarkerOrder sets the order in which the properties are written.
	MarkerOrder = "order"
	// MarkerReadOnly marks the property as written, but never set back on read.
	MarkerReadOnly = "readonly"
	// MarkerWriteOnly marks the property as never written. Its value is set by
	// other mechanisms after construction.
	MarkerWriteOnly = "writeonly"
	// MarkerField defines the field that backs the property value in the documents.
	MarkerField = "field"
	// MarkerSync defines the zero argument method called after the backing field is set.
	MarkerSync = "sync"
	// MarkerContract forces the contract with given name for the property value.
	MarkerContract = "contract"
	// MarkerInclude includes unexported field into the properties.
	MarkerInclude = "include"
	// MarkerInPlace reads the property value into the already allocated instance.
	MarkerInPlace = "inplace"
)

// Separators used by the struct tag parser.
const (
	// MarkerSeparator is the symbol used to separate the markers.
	MarkerSeparator = ";"
	// ValueSeparator is the symbol used to separate the marker values.
	ValueSeparator = ","
)

// Marker is the key: values pair defined in the property struct tag.
type Marker struct {
	Key    string
	Values []string
}

// Value returns the first marker value.
func (m *Marker) Value() string {
	if len(m.Values) == 0 {
		return ""
	}
	return m.Values[0]
}

// ParseMarkers extracts the markers from the struct field 'xgraph' tag.
// The separators might be escaped with the '\' character. The tag value is a quoted Go string,
// so that the escape character must be doubled within the tag, i.e. `xgraph:"name=a\\;b"`.
func ParseMarkers(field reflect.StructField) []*Marker {
	tag, ok := field.Tag.Lookup(Tag)
	if !ok {
		return nil
	}
	if tag == MarkerSkip {
		return []*Marker{{Key: MarkerSkip}}
	}

	var markers []*Marker
	for _, option := range splitEscaped(tag, MarkerSeparator[0]) {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		m := &Marker{}
		if i := indexUnescaped(option, '='); i > 0 {
			m.Key = strings.TrimSpace(unescape(option[:i]))
			for _, v := range splitEscaped(option[i+1:], ValueSeparator[0]) {
				m.Values = append(m.Values, strings.TrimSpace(unescape(v)))
			}
		} else {
			m.Key = unescape(option)
		}
		markers = append(markers, m)
	}
	return markers
}

func splitEscaped(s string, sep byte) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		if s[i] == sep && (i == 0 || s[i-1] != '\\') {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func indexUnescaped(s string, r byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == r && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := strings.NewReplacer(`\;`, ";", `\,`, ",", `\=`, "=")
	return r.Replace(s)
}
