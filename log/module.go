package log

import (
	"sync/atomic"

	"github.com/neuronlabs/uni-logger"
)

// ModuleLogger prefixes the messages with '[Name] '. Its level follows SetLevel
// but might be changed for the module alone.
type ModuleLogger struct {
	Name  string
	level atomic.Int32
}

// NewModuleLogger creates and registers the logger of the module 'name'.
func NewModuleLogger(name string) *ModuleLogger {
	m := &ModuleLogger{Name: name}

	std.lock.Lock()
	m.level.Store(int32(std.level))
	std.modules = append(std.modules, m)
	std.lock.Unlock()
	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return unilogger.Level(m.level.Load())
}

// SetLevel sets the level of the module logger only.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.level.Store(int32(level))
}

// Debug3f writes the formatted LDEBUG3 level log with the module prefix.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	m.write(LDEBUG3, format, args)
}

// Debug2f writes the formatted LDEBUG2 level log with the module prefix.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	m.write(LDEBUG2, format, args)
}

// Debugf writes the formatted LDEBUG level log with the module prefix.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	m.write(LDEBUG, format, args)
}

// Infof writes the formatted LINFO level log with the module prefix.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	m.write(LINFO, format, args)
}

// Warningf writes the formatted LWARNING level log with the module prefix.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	m.write(LWARNING, format, args)
}

// Errorf writes the formatted LERROR level log with the module prefix.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	m.write(LERROR, format, args)
}

func (m *ModuleLogger) write(level unilogger.Level, format string, args []interface{}) {
	std.write(m.Level(), level, "["+m.Name+"] "+format, args)
}
