// Package log contains the xgraph logging utilities. It wraps the
// 'github.com/neuronlabs/uni-logger' leveled loggers and allows to create
// a module scoped loggers that could have their own levels.
package log
