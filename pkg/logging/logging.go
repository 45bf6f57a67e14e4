// Package logging builds the *logrus.Logger whose *logrus.Entry values are
// constructor-injected elsewhere, with optional rotated file output. Nothing here is a global singleton:
// callers hold onto whatever New returns and pass it down explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger's level and rotated file output.
type Options struct {
	Level string // debug | info | warn | error
	File  string // empty disables file output
}

// New builds a *logrus.Logger per opts, writing to stdout and, if File is
// set, to a lumberjack-rotated file at the same time.
func New(opts Options) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if opts.File == "" {
		log.SetOutput(os.Stdout)
		return log, nil
	}

	rotated := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	return log, nil
}
