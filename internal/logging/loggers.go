package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Logger is shared by every package in the module. It's safe for concurrent use.
var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Out = os.Stderr
	Logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	Logger.Level = logrus.InfoLevel
}

// Tagged returns an entry carrying the component tag, mirroring the log tags used by the host app.
func Tagged(tag string) *logrus.Entry {
	return Logger.WithField("tag", tag)
}

// SetLevel parses and applies a level name like "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetFileRotationHooker mirrors every log entry into daily rotated files under path, keeping count files.
func SetFileRotationHooker(path string, count uint) error {
	frHook, err := newFileRotateHooker(path, count)
	if err != nil {
		return err
	}
	Logger.Hooks.Add(frHook)
	return nil
}

func newFileRotateHooker(path string, count uint) (logrus.Hook, error) {
	if len(path) == 0 {
		return nil, errors.New("empty log directory")
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve log directory '%s': %w", path, err)
		}
		path = abs
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", path, err)
	}
	writer, err := rotatelogs.New(
		filepath.Join(path, "nativesec-%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(path, "nativesec.log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithRotationCount(count),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rotating log writer: %w", err)
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}), nil
}
