package log

import (
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/jsonapi-serializer/errors"
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

// ParseLevel parses the logger level from its lowercased name i.e. 'debug2', 'warning'.
func ParseLevel(level string) (unilogger.Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return LUNKNOWN, errors.NewDetf(ClassUnknownLevel, "unknown logger level: '%s'", level)
	}
	return lvl, nil
}
