package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// WithLogData attaches a LogData to the context so handlers deeper in the
// call chain can add fields and timings to the request's completion log line.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when none is attached.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// HumaMiddleware creates a fresh LogData per request, attaches it to the
// request context, and emits one completion line per operation.
func HumaMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		endTimer := logData.AddTiming("durationMs")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.Log().Infof("Handler.%s.Complete", ctx.Operation().OperationID)
	}
}
