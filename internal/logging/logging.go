package logging

import (
	"github.com/sirupsen/logrus"
)

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	base.SetLevel(logrus.InfoLevel)
}

// SetVerbose raises the log level to debug.
func SetVerbose(verbose bool) {
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	} else {
		base.SetLevel(logrus.InfoLevel)
	}
}

// Component returns a logger entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return base.WithField("component", name)
}
