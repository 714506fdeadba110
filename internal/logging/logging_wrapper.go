package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a plain-http handler into one that logs start,
// completion, and duration under a stable logging name.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// HumaMiddleware attaches a fresh LogData to every API request and logs the
// operation outcome with its recorded timings once the chain returns.
func HumaMiddleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID
		log.Infof("Handler.%v.Start", operationID)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataContextKey{}, logData))
		endTimer()

		status := ctx.Status()
		if status >= http.StatusBadRequest {
			logData.Log().WithField("status", status).Errorf("Handler.%v.Error", operationID)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
