package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const serviceName = "finance-tracker"

// serviceHook stamps every entry with the service name so the API, the
// operator worker and the migrations runner stay distinguishable in
// aggregated logs.
type serviceHook struct{}

func (serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = serviceName
	return nil
}

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}
	logger.AddHook(serviceHook{})

	return &logger
}
