package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/sentiment-service/reqctx"
	"github.com/blogem/sentiment-service/services"
)

// StatusController handles host status requests
type StatusController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewStatusController creates a new status controller
func NewStatusController(services *services.Services, logger *slog.Logger) *StatusController {
	return &StatusController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /status
func (c *StatusController) Index(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.services.Status.Status(r.Context(), reqctx.GetReceivedAt(r.Context()))
	if err != nil {
		renderInternalError(w, r, c.logger, err)
		return
	}

	renderJSON(w, r, c.logger, snapshot)
}
