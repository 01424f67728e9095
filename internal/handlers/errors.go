package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error to its HTTP status. Client errors echo the
// message; server errors are logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindError answers a 400 for a request that failed binding or tag validation.
func bindError(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + what + ": " + err.Error()})
}

// actorID returns the authenticated user or answers 401.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// targetID resolves the id of a PUT/DELETE that may carry it in the body or as ?id=.
func targetID(c *gin.Context, bodyID string) (string, bool) {
	if bodyID != "" {
		return bodyID, true
	}
	if id := c.Query("id"); id != "" {
		return id, true
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id is required"})
	return "", false
}

// deleteTargetID reads an optional {"id": ...} body before falling back to ?id=.
// A body that is present but not valid JSON is rejected.
func deleteTargetID(c *gin.Context) (string, bool) {
	var body struct {
		ID string `json:"id"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			bindError(c, "request body", err)
			return "", false
		}
	}
	return targetID(c, body.ID)
}
