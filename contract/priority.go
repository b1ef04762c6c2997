package contract

import (
	"reflect"
	"strconv"

	"github.com/neuronlabs/xgraph/mapping"
)

// Level is the support priority level.
type Level int

// Support priority levels.
const (
	LevelNotSupported Level = iota
	LevelDefault
	LevelType
	LevelElement
	LevelAttribute
)

var levelNames = map[Level]string{
	LevelNotSupported: "NotSupported",
	LevelDefault:      "Default",
	LevelType:         "Type",
	LevelElement:      "Element",
	LevelAttribute:    "Attribute",
}

// String implements fmt.Stringer interface.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Type sub priorities. The more specific match wins.
const (
	SubExact     = 0
	SubKind      = -1
	SubInterface = -2
)

// Priority is the support priority of the contract. Priorities are compared by the level first
// and the sub priority afterwards.
type Priority struct {
	Level Level
	Sub   int
}

// Supported checks if the priority is supported.
func (p Priority) Supported() bool {
	return p.Level > LevelNotSupported
}

// Compare compares the priority with the 'other'. Returns negative number if 'p' is lower,
// zero if both are equal and positive number if 'p' is higher.
// Not supported priorities are always lower than the supported ones.
func (p Priority) Compare(other Priority) int {
	switch {
	case p.Level != other.Level:
		return int(p.Level) - int(other.Level)
	case !p.Supported():
		return 0
	case p.Sub < other.Sub:
		return -1
	case p.Sub > other.Sub:
		return 1
	}
	return 0
}

// String implements fmt.Stringer interface.
func (p Priority) String() string {
	if p.Sub == 0 {
		return p.Level.String()
	}
	return p.Level.String() + "(" + strconv.Itoa(p.Sub) + ")"
}

// Match is the context matched by the contract while checking its support.
// It is passed to the contract operations so that the contracts could be stateless.
type Match struct {
	// Type is the matched runtime type.
	Type reflect.Type
	// Declared is the declared type of the value slot, i.e. property type.
	Declared reflect.Type
	// Property is the property that holds the value, nil for root and collection items.
	Property *mapping.Property
	// Data is the contract specific matched data.
	Data interface{}
}

// Support is the result of the contract support check.
type Support struct {
	Priority
	Match Match
}

// NotSupported is the support of the contract that can't manage given input.
var NotSupported = Support{}

// Supports creates the support result with given level and sub priority.
func Supports(level Level, sub int, match Match) Support {
	return Support{Priority: Priority{Level: level, Sub: sub}, Match: match}
}
