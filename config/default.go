package config

import (
	"github.com/spf13/viper"
)

// Default returns default configuration.
func Default() *Config {
	return &Config{
		NamingConvention: "lower_camel",
		LogLevel:         "info",
		Indent:           2,
		ReferenceBase:    1,
		FileExtension:    ".xml",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	keys := map[string]interface{}{
		"naming_convention": d.NamingConvention,
		"log_level":         d.LogLevel,
		"indent":            d.Indent,
		"reference_base":    d.ReferenceBase,
		"file_extension":    d.FileExtension,
		"strict_properties": d.StrictProperties,
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
