package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/blogem/sentiment-service/apierrors"
	"github.com/blogem/sentiment-service/models"
	"github.com/blogem/sentiment-service/reqctx"
	"github.com/blogem/sentiment-service/services"
)

// AnalyzeController handles sentiment analysis requests
type AnalyzeController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAnalyzeController creates a new analyze controller
func NewAnalyzeController(services *services.Services, logger *slog.Logger) *AnalyzeController {
	return &AnalyzeController{
		services: services,
		logger:   logger,
	}
}

// Analyze handles POST /analyze
func (c *AnalyzeController) Analyze(w http.ResponseWriter, r *http.Request) {
	receivedAt := reqctx.GetReceivedAt(r.Context())

	// Malformed JSON is an internal error, not a validation error
	body, err := decodeBody(r.Body)
	if err != nil {
		renderInternalError(w, r, c.logger, err)
		return
	}

	req, validationErrs := models.ParseAnalyzeRequest(body)
	if validationErrs.HasErrors() {
		renderError(w, r, c.logger, apierrors.NewValidationError(validationErrs))
		return
	}

	// The provider call outlives a disconnected client
	ctx := context.WithoutCancel(r.Context())

	result, err := c.services.Sentiment.Analyze(ctx, req, receivedAt)
	if err != nil {
		var fieldErrs models.ValidationErrors
		if errors.As(err, &fieldErrs) {
			renderError(w, r, c.logger, apierrors.NewValidationError(fieldErrs))
			return
		}
		renderInternalError(w, r, c.logger, err)
		return
	}

	renderJSON(w, r, c.logger, result)
}

// decodeBody decodes a request body holding exactly one JSON value
func decodeBody(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("more than one JSON value")
		}
		return nil, fmt.Errorf("unexpected data after request body: %w", err)
	}

	return v, nil
}
