// Package handler exposes the prefs feature over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/usecase"
)

// defaultClientID is used when the frontend does not identify itself.
const defaultClientID = "default"

// preferenceUsecase is the part of the prefs usecase the handler needs.
type preferenceUsecase interface {
	Theme(ctx context.Context, clientID string) (string, error)
	SetTheme(ctx context.Context, clientID, theme string) error
}

// PreferenceHandler handles preference HTTP endpoints.
type PreferenceHandler struct {
	uc preferenceUsecase
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(uc preferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// GetTheme handles GET /prefs/theme.
func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	theme, err := h.uc.Theme(c.Request.Context(), clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "theme": theme})
}

// themeRequest is the body of PUT /prefs/theme.
type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// SetTheme handles PUT /prefs/theme.
func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "theme is required"})
		return
	}

	if err := h.uc.SetTheme(c.Request.Context(), clientID(c), req.Theme); err != nil {
		if errors.Is(err, usecase.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid theme"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "theme": req.Theme})
}

// clientID extracts the caller's client identifier.
func clientID(c *gin.Context) string {
	if id := c.Query("client_id"); id != "" {
		return id
	}
	return defaultClientID
}
