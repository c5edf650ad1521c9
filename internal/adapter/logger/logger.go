package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements ports.LoggerPort on top of logrus.
type LogrusAdapter struct {
	log *logrus.Logger
}

func NewLoggerAdapter(env string) *LogrusAdapter {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		log.SetLevel(logrus.DebugLevel)
	}

	return &LogrusAdapter{log: log}
}

func (l *LogrusAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
