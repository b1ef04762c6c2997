package config

import (
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
)

var validate = validator.New()

// ReadNamedConfig reads the config with the provided name from the working
// directory or the 'configs' directory. Missing values are set to defaults.
func ReadNamedConfig(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return read(v)
}

// ReadConfigFile reads the config from the file at 'path' within the file system 'fs'.
// If the 'fs' is nil the operating system file system is used.
func ReadConfigFile(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	if fs != nil {
		v.SetFs(fs)
	}
	v.SetConfigFile(path)
	return read(v)
}

// FromViper decodes the configuration from already prepared viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	return decode(v)
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(class.ConfigValueInvalid, err, "invalid configuration")
	}
	return nil
}

func read(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		log.Debugf("Reading config failed: %v", err)
		return nil, errors.Wrap(class.ConfigReadFile, err, "reading config failed")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed: %v", err)
		return nil, errors.Wrap(class.ConfigReadDecode, err, "decoding config failed")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
