package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/sentiment-service/apierrors"
	"github.com/blogem/sentiment-service/reqctx"
	"github.com/blogem/sentiment-service/services"
)

// renderJSON writes a 200 JSON response
func renderJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, data any) {
	renderJSONWithStatus(w, r, logger, http.StatusOK, data)
}

// renderJSONWithStatus writes a JSON response with the provided status code
func renderJSONWithStatus(w http.ResponseWriter, r *http.Request, logger *slog.Logger, statusCode int, data any) {
	if err := apierrors.WriteJSON(w, statusCode, data); err != nil {
		logWriteFailure(r, logger, err)
	}
}

// renderError writes an API error body
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, apiErr *apierrors.APIError) {
	if err := apierrors.WriteError(w, apiErr); err != nil {
		logWriteFailure(r, logger, err)
	}
}

// renderInternalError logs the cause and writes the generic 500 body
func renderInternalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", reqctx.GetRequestID(r.Context()),
	)
	renderError(w, r, logger, apierrors.NewInternalError())
}

func logWriteFailure(r *http.Request, logger *slog.Logger, err error) {
	logger.Error("failed to write response",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", reqctx.GetRequestID(r.Context()),
	)
}

// Controllers holds all controller instances
type Controllers struct {
	Analyze *AnalyzeController
	Logs    *LogsController
	Status  *StatusController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *slog.Logger) *Controllers {
	return &Controllers{
		Analyze: NewAnalyzeController(services, logger),
		Logs:    NewLogsController(services, logger),
		Status:  NewStatusController(services, logger),
	}
}
