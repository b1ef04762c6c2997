// Package config contains the xgraph configuration structures, defaults and readers.
package config

// Config contains general configurations for the xgraph serializer.
type Config struct {
	// NamingConvention is the naming convention used to build the element names
	// from the property names.
	// Allowed values:
	// - none
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=none camel lower_camel snake kebab"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// Indent is the number of spaces used to indent nested elements in the encoded documents.
	// Zero value writes the document in a single line.
	Indent int `mapstructure:"indent" validate:"min=0,max=16"`

	// ReferenceBase is the first reference id assigned within single serialization session.
	ReferenceBase int `mapstructure:"reference_base" validate:"min=0"`

	// FileExtension is the extension used by the external documents.
	FileExtension string `mapstructure:"file_extension" validate:"required"`

	// StrictProperties marks the unknown elements in the documents as errors.
	StrictProperties bool `mapstructure:"strict_properties"`
}
