package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Setup configures the shared logger. Production gets JSON lines, everything else
// the human readable text formatter.
func Setup(production bool, level string) {
	log.SetOutput(os.Stdout)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

func L() *logrus.Logger {
	return log
}

// WithComponent returns an entry tagged with the component name.
func WithComponent(name string) *logrus.Entry {
	return log.WithField("component", name)
}
