package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v4/common"
)

// NewLogger builds the process logger and points unipdf's own logging at
// it, at the same level.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	common.SetLogger(&libLogger{entry: log.WithField("lib", "unipdf")})
	return log, nil
}

// libLogger adapts logrus to unipdf's common.Logger.
type libLogger struct {
	entry *logrus.Entry
}

var _ common.Logger = (*libLogger)(nil)

func (l *libLogger) Error(format string, args ...interface{}) {
	l.entry.Error(fmt.Sprintf(format, args...))
}

func (l *libLogger) Warning(format string, args ...interface{}) {
	l.entry.Warn(fmt.Sprintf(format, args...))
}

// unipdf's notice level has no logrus counterpart.
func (l *libLogger) Notice(format string, args ...interface{}) {
	l.entry.Info(fmt.Sprintf(format, args...))
}

func (l *libLogger) Info(format string, args ...interface{}) {
	l.entry.Info(fmt.Sprintf(format, args...))
}

func (l *libLogger) Debug(format string, args ...interface{}) {
	l.entry.Debug(fmt.Sprintf(format, args...))
}

func (l *libLogger) Trace(format string, args ...interface{}) {
	l.entry.Trace(fmt.Sprintf(format, args...))
}

func (l *libLogger) IsLogLevel(level common.LogLevel) bool {
	return l.entry.Logger.IsLevelEnabled(logrusLevel(level))
}

func logrusLevel(level common.LogLevel) logrus.Level {
	switch level {
	case common.LogLevelError:
		return logrus.ErrorLevel
	case common.LogLevelWarning:
		return logrus.WarnLevel
	case common.LogLevelNotice, common.LogLevelInfo:
		return logrus.InfoLevel
	case common.LogLevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
