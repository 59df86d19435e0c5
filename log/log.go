// Package log wraps logrus with the application's file and format settings.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/remuco-cli/remuco/filesystem"
	"github.com/remuco-cli/remuco/key"
	"github.com/remuco-cli/remuco/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Setup configures output, format and level from the logs.* keys.
// Without logs.write the bridge logs to stderr.
func Setup() error {
	var out io.Writer = os.Stderr

	if viper.GetBool(key.LogsWrite) {
		now := time.Now()
		if days := viper.GetInt(key.LogsKeep); days > 0 {
			_, _ = Prune(where.Logs(), time.Duration(days)*24*time.Hour, now)
		}

		path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", now.Format("2006-01-02")))

		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// With returns an entry carrying a component field.
func With(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
func Tracef(format string, args ...interface{}) {
	logrus.Tracef(format, args...)
}

// KV adapts logrus to loggers that take a message plus key/value pairs.
type KV struct {
	entry *logrus.Entry
}

func NewKV(component string) KV {
	return KV{entry: With(component)}
}

func (k KV) fields(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return k.entry.WithFields(fields)
}

func (k KV) Error(msg string, keysAndValues ...interface{}) {
	k.fields(keysAndValues).Error(msg)
}
func (k KV) Warn(msg string, keysAndValues ...interface{}) {
	k.fields(keysAndValues).Warn(msg)
}
func (k KV) Info(msg string, keysAndValues ...interface{}) {
	k.fields(keysAndValues).Info(msg)
}
func (k KV) Debug(msg string, keysAndValues ...interface{}) {
	k.fields(keysAndValues).Debug(msg)
}
