package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once     sync.Once
	instance *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		instance = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "shapes",
			Level:           log.InfoLevel,
			// the helpers below add one frame
			CallerOffset: 1,
		})
	})
	return instance
}

// SetLevel sets the minimum level from its name (debug, info, warn, error, fatal).
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	logger().SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	logger().SetOutput(w)
}

func Debug(msg string, args ...interface{}) {
	logger().Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	logger().Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	logger().Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	logger().Errorf(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	logger().Fatalf(msg, args...)
}
