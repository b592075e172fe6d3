// Package logging configures a file-backed logger. A fullscreen TUI owns
// the terminal, so log output must never go to stdout or stderr while the
// application runs.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var osOpenFile = os.OpenFile

// Setup returns a logger writing to the named file, or a discarding logger
// when path is empty. The returned closer releases the file.
func Setup(path string) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := osOpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return logger, func() {
		_ = f.Close()
	}, nil
}
