package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/sentiment-service/services"
)

// LogsController handles request log retrieval
type LogsController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services, logger *slog.Logger) *LogsController {
	return &LogsController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /logs
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, c.logger, c.services.Logs.GetAll())
}
