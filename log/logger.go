package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LINFO
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	basic := unilogger.NewBasicLogger(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// ParseLevel parses the level from its configuration name.
// Unknown names results with the LUNKNOWN level.
func ParseLevel(name string) unilogger.Level {
	switch strings.ToLower(name) {
	case "debug3":
		return LDEBUG3
	case "debug2":
		return LDEBUG2
	case "debug":
		return LDEBUG
	case "info":
		return LINFO
	case "warning", "warn":
		return LWARNING
	case "error":
		return LERROR
	case "critical":
		return LCRITICAL
	}
	return LUNKNOWN
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// Logger returns default logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// SetLevel sets the level if possible for the logger.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	if level == currentLevel {
		return nil
	}

	currentLevel = level
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.New(class.CommonLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// SetLogger sets the 'log' as the current logger.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log

	if depth, ok := log.(unilogger.OutputDepthGetter); ok {
		if setter, ok := log.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}

	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}

	debugLeveled, isDebugLeveled = log.(unilogger.DebugLeveledLogger)
	subLogger, isSubLogger := log.(unilogger.SubLogger)
	for _, m := range modules {
		if m.logger == nil && isSubLogger {
			m.logger = subLogger.SubLogger()
			m.initializeLogger()
		}
		m.SetLevel(currentLevel)
	}
}

// SetModulesLevel sets the 'level' for all modules.
func SetModulesLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	for _, module := range modules {
		module.SetLevel(level)
	}
	return nil
}

// Debug writes the LDEBUG level log.
func Debug(args ...interface{}) {
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	if !isDebugLeveled {
		Debugf(format, args...)
		return
	}
	debugLeveled.Debug2f(format, args...)
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	if !isDebugLeveled {
		Debugf(format, args...)
		return
	}
	debugLeveled.Debug3f(format, args...)
}

// Info writes the LINFO level log.
func Info(args ...interface{}) {
	if logger != nil {
		logger.Info(args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf writes the formatted warning level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Error writes the LERROR level log.
func Error(args ...interface{}) {
	if logger != nil {
		logger.Error(args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf writes the formatted fatal - LCRITICAL level log.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Panicf writes and panics formatted log.
func Panicf(format string, args ...interface{}) {
	if logger != nil {
		logger.Panicf(format, args...)
	}
	panic(fmt.Sprintf(format, args...))
}
