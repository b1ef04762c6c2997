package mapping

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// NamingConvention is the property to element name convention.
type NamingConvention int

const (
	// NoNaming keeps the property names unchanged.
	NoNaming NamingConvention = iota
	// SnakeCase is the naming convention where all words are in lower case letters separated by the '_' character.
	// i.e.: naming_convention
	SnakeCase
	// CamelCase is the naming convention where words are not separated by any character or space and each word starts
	// with a capital letter.
	// i.e.: NamingConvention
	CamelCase
	// LowerCamelCase is the naming convention where words are not separated by any character or space and all but first words starts
	// with a capital letter.
	// i.e.: namingConvention
	LowerCamelCase
	// KebabCase is the naming convention where all words are in lower case letters separated by the '-' character.
	// i.e.: naming-convention
	KebabCase
)

// ParseNamingConvention parses the naming convention from its configuration name.
func ParseNamingConvention(name string) (NamingConvention, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return NoNaming, nil
	case "snake":
		return SnakeCase, nil
	case "lower_camel", "lowercamel":
		return LowerCamelCase, nil
	case "camel":
		return CamelCase, nil
	case "kebab":
		return KebabCase, nil
	}
	return NoNaming, errors.Newf(class.ConfigValueInvalid, "unknown naming convention name: %s", name)
}

// Name converts the 'raw' property name with the naming convention.
func (n NamingConvention) Name(raw string) string {
	switch n {
	case SnakeCase:
		return strcase.ToSnake(raw)
	case CamelCase:
		return strcase.ToCamel(raw)
	case LowerCamelCase:
		return strcase.ToLowerCamel(raw)
	case KebabCase:
		return strcase.ToKebab(raw)
	}
	return raw
}

// String implements fmt.Stringer interface.
func (n NamingConvention) String() string {
	switch n {
	case SnakeCase:
		return "snake"
	case CamelCase:
		return "camel"
	case LowerCamelCase:
		return "lower_camel"
	case KebabCase:
		return "kebab"
	}
	return "none"
}
