package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger builds the diagnostic logger. Everything the operator does not
// need to see in the window goes here.
func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log
}
