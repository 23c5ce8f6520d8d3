package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger routes log output away from the terminal the TUI owns.
func InitLogger(out io.Writer) {
	Logger.SetOutput(out)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Logger.SetLevel(logrus.InfoLevel)
}
