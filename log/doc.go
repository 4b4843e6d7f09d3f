// Package log contains the default logger facade with it's subcomponents. It is used by all packages to log
// their messages.
//
// In order not to extort any specific logging package, the facade wraps around any logger that implements
// the 'unilogger.LeveledLogger' interface. If the logger implements also 'unilogger.DebugLeveledLogger', the
// debug2 and debug3 levels are forwarded to it, otherwise they are written as plain debug messages.
//
// The module loggers allow to tag and set different levels for the engine components.
package log
