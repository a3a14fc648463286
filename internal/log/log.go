package log

import (
	"io"
	"os"
	"sync"

	cblog "github.com/charmbracelet/log"
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
)

func get() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: false,
			Prefix:          "jetcolors",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal. Unknown values keep the
// current level.
func SetLevel(level string) {
	lvl, err := cblog.ParseLevel(level)
	if err != nil {
		get().Warnf("Unknown log level %q", level)
		return
	}
	get().SetLevel(lvl)
}

func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

func Debug(msg interface{}, keyvals ...interface{}) { get().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { get().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { get().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { get().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { get().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { get().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { get().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { get().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { get().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { get().Fatalf(format, args...) }
