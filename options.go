package xgraph

import (
	"github.com/spf13/afero"

	"github.com/neuronlabs/xgraph/config"
	"github.com/neuronlabs/xgraph/contract"
	"github.com/neuronlabs/xgraph/mapping"
)

// Options are the serializer creation options.
type Options struct {
	Config            *config.Config
	Fs                afero.Fs
	Registry          *contract.Registry
	Types             *mapping.Types
	Contracts         []contract.Contract
	PropertyContracts []contract.PropertyContract
	Models            []interface{}
}

// Option is the function that sets up the serializer options.
type Option func(o *Options)

// WithConfig sets the configuration for the serializer. By default the config.Default is used.
func WithConfig(cfg *config.Config) Option {
	return func(o *Options) {
		o.Config = cfg
	}
}

// WithFs sets the file system used to read and write the documents along with their external references.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		o.Fs = fs
	}
}

// WithRegistry replaces the default contract registry. The template contract is not added
// to the provided registry.
func WithRegistry(r *contract.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithTypes sets the type registry shared by the serializer.
func WithTypes(types *mapping.Types) Option {
	return func(o *Options) {
		o.Types = types
	}
}

// WithContracts registers additional contracts. The contracts are registered after the default ones,
// so that on equal priority the default contract wins.
func WithContracts(contracts ...contract.Contract) Option {
	return func(o *Options) {
		o.Contracts = append(o.Contracts, contracts...)
	}
}

// WithPropertyContracts registers additional property contracts.
func WithPropertyContracts(contracts ...contract.PropertyContract) Option {
	return func(o *Options) {
		o.PropertyContracts = append(o.PropertyContracts, contracts...)
	}
}

// WithModels registers the model types, so that their names could be resolved on read.
func WithModels(models ...interface{}) Option {
	return func(o *Options) {
		o.Models = append(o.Models, models...)
	}
}
