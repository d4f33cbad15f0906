package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const module = "symtable"

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var (
	log     = logging.MustGetLogger(module)
	leveled logging.LeveledBackend
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled = logging.AddModuleLevel(logging.NewBackendFormatter(backend, stdoutLogFormat))
	leveled.SetLevel(logging.INFO, module)
	log.SetBackend(leveled)
}

// Setup 设置日志级别，level 取 DEBUG/INFO/NOTICE/WARNING/ERROR/CRITICAL
func Setup(level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		return errors.Wrapf(err, "bad log level %q", level)
	}
	leveled.SetLevel(lvl, module)
	return nil
}

func Debug(v ...any) {
	log.Debug(v...)
}

func Debugf(format string, v ...any) {
	log.Debugf(format, v...)
}

func Info(v ...any) {
	log.Info(v...)
}

func Infof(format string, v ...any) {
	log.Infof(format, v...)
}

func Warn(v ...any) {
	log.Warning(v...)
}

func Warnf(format string, v ...any) {
	log.Warningf(format, v...)
}

func Error(v ...any) {
	log.Error(v...)
}

func Errorf(format string, v ...any) {
	log.Errorf(format, v...)
}

func Fatal(v ...any) {
	log.Fatal(v...)
}
