// Package logging wires the run logger: human output on stderr plus
// an append-only, size-rotated run log on disk.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. Stderr carries Info (or Debug
// when verbose) with colour only on a terminal; every record is also
// written uncoloured to the rotating log file. The returned close
// function flushes the file sink.
func New(verbose bool, logFile string, maxSizeMB int) (hclog.Logger, func() error) {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}

	color := hclog.ColorOff
	if term.IsTerminal(int(os.Stderr.Fd())) {
		color = hclog.AutoColor
	}

	logger := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:   "ukiyo",
		Level:  level,
		Output: os.Stderr,
		Color:  color,
	})

	if logFile == "" {
		return logger, func() error { return nil }
	}

	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
	}
	sink := hclog.NewSinkAdapter(&hclog.LoggerOptions{
		Level:  hclog.Debug,
		Output: rotated,
		Color:  hclog.ColorOff,
	})
	logger.RegisterSink(sink)

	return logger, func() error {
		logger.DeregisterSink(sink)
		return rotated.Close()
	}
}
