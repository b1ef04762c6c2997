package class

import (
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (1 << indexBitSize) - 1
	maxMinorValue = (1 << minorBitSize) - 1
	maxMajorValue = (1 << majorBitSize) - 1

	majorMinorMask = uint32(((1 << (majorBitSize + minorBitSize)) - 1) << indexBitSize)
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerCommonClasses()
	registerConfigClasses()
	registerDocumentClasses()
	registerMappingClasses()
	registerSerializationClasses()
	registerTemplateClasses()
}

// Class is the error classification model.
// It is composed of the major, minor and index subclassifications packed
// into a single uint32 value:
//
//	major - 7 bits
//	minor - 10 bits
//	index - 15 bits
//
// Major is a global scope division like 'Serialization' or 'Document'.
// Minor divides the major into subclasses - i.e. 'Read', 'Reference'.
// Index is the most precise classification - i.e. Serialization - Read - Unresolved Type.
type Class uint32

// Major gets the class major.
func (c Class) Major() Major {
	return Major(uint32(c) >> (32 - majorBitSize))
}

// Minor gets the class minor.
func (c Class) Minor() Minor {
	return Minor{value: uint16((uint32(c) >> indexBitSize) & maxMinorValue), major: c.Major()}
}

// Index gets the class index.
func (c Class) Index() Index {
	return Index{value: uint16(uint32(c) & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// IsMinor checks if the class is composed of provided minor 'm'.
func (c Class) IsMinor(m Minor) bool {
	return c.Minor() == m
}

// MjrMnrMasked returns the class value masked by the major and minor value only.
func (c Class) MjrMnrMasked() uint32 {
	return uint32(c) & majorMinorMask
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	var names []string
	names = append(names, strings.Fields(c.Major().Name())...)

	minor := c.Minor()
	if minor.value == 0 {
		return strings.Join(names, "")
	}
	names = append(names, strings.Fields(minor.Name())...)

	if index := c.Index(); index.value != 0 {
		names = append(names, strings.Fields(index.Name())...)
	}
	return strings.Join(names, "")
}

// MustNewMinorClass creates the class for provided minor with no index.
func MustNewMinorClass(minor Minor) Class {
	return Class(uint32(minor.major)<<(32-majorBitSize) | uint32(minor.value)<<indexBitSize)
}
