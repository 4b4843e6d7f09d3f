package log

import (
	"io"
	stdlog "log"
	"os"
	"sync"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/jsonapi-serializer/errors"
)

// Logger levels, aliased from unilogger.
const (
	LDEBUG3   = unilogger.DEBUG3
	LDEBUG2   = unilogger.DEBUG2
	LDEBUG    = unilogger.DEBUG
	LINFO     = unilogger.INFO
	LWARNING  = unilogger.WARNING
	LERROR    = unilogger.ERROR
	LCRITICAL = unilogger.CRITICAL
	LUNKNOWN  = unilogger.UNKNOWN
)

// std is the package wide facade. Nothing is written until a logger is set.
var std = &facade{level: LINFO}

type facade struct {
	lock    sync.RWMutex
	out     unilogger.LeveledLogger
	level   unilogger.Level
	modules []*ModuleLogger
}

func (f *facade) output() unilogger.LeveledLogger {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.out
}

func (f *facade) currentLevel() unilogger.Level {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.level
}

// write sends the message to the output if the 'level' passes the 'threshold'.
// Debug2 and debug3 messages fall back to Debugf when the output doesn't distinguish them.
func (f *facade) write(threshold, level unilogger.Level, format string, args []interface{}) {
	out := f.output()
	if out == nil || (threshold != LUNKNOWN && level < threshold) {
		return
	}
	switch level {
	case LDEBUG3, LDEBUG2:
		if debug, ok := out.(unilogger.DebugLeveledLogger); ok {
			if level == LDEBUG3 {
				debug.Debug3f(format, args...)
			} else {
				debug.Debug2f(format, args...)
			}
			return
		}
		out.Debugf(format, args...)
	case LDEBUG:
		out.Debugf(format, args...)
	case LINFO:
		out.Infof(format, args...)
	case LWARNING:
		out.Warningf(format, args...)
	default:
		out.Errorf(format, args...)
	}
}

// Default sets a unilogger.BasicLogger writing to the standard error.
func Default() {
	New(os.Stderr, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
}

// New sets a unilogger.BasicLogger writing to 'out'. The 'prefix' and 'flags' are the standard log ones.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	// Skips the facade frames so that the file:line points to the caller.
	basic.SetOutputDepth(6)
	SetLogger(basic)
}

// SetLogger replaces the output logger. The current level is applied to it if it is a unilogger.LevelSetter.
func SetLogger(out unilogger.LeveledLogger) {
	std.lock.Lock()
	std.out = out
	level := std.level
	std.lock.Unlock()

	if setter, ok := out.(unilogger.LevelSetter); ok {
		setter.SetLevel(level)
	}
	Debugf("logger set with level: %s", level)
}

// Logger returns the current output logger.
func Logger() unilogger.LeveledLogger {
	return std.output()
}

// Level returns the facade level.
func Level() unilogger.Level {
	return std.currentLevel()
}

// SetLevel changes the level of the facade, all module loggers and the output.
// Returns an error if the output can't change its level.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.NewDet(ClassUnknownLevel, "can't set unknown logger level")
	}
	std.lock.Lock()
	std.level = level
	modules := append([]*ModuleLogger(nil), std.modules...)
	out := std.out
	std.lock.Unlock()

	for _, m := range modules {
		m.SetLevel(level)
	}
	if out == nil {
		return nil
	}
	setter, ok := out.(unilogger.LevelSetter)
	if !ok {
		return errors.NewDetf(ClassNotLevelSetter, "logger: '%T' can't change its level", out)
	}
	setter.SetLevel(level)
	return nil
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	std.write(std.currentLevel(), LDEBUG3, format, args)
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	std.write(std.currentLevel(), LDEBUG2, format, args)
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	std.write(std.currentLevel(), LDEBUG, format, args)
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	std.write(std.currentLevel(), LINFO, format, args)
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	std.write(std.currentLevel(), LWARNING, format, args)
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	std.write(std.currentLevel(), LERROR, format, args)
}
