package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/transport/handler"
	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/usecase"
)

type mockPreferenceUsecase struct {
	themeFn    func(ctx context.Context, clientID string) (string, error)
	setThemeFn func(ctx context.Context, clientID, theme string) error
}

func (m *mockPreferenceUsecase) Theme(ctx context.Context, clientID string) (string, error) {
	return m.themeFn(ctx, clientID)
}

func (m *mockPreferenceUsecase) SetTheme(ctx context.Context, clientID, theme string) error {
	return m.setThemeFn(ctx, clientID, theme)
}

func newRouter(h *handler.PreferenceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/prefs/theme", h.GetTheme)
	r.PUT("/prefs/theme", h.SetTheme)
	return r
}

func TestPreferenceHandler_GetTheme(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		themeFn        func(ctx context.Context, clientID string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns saved theme",
			url:  "/prefs/theme?client_id=abc",
			themeFn: func(_ context.Context, clientID string) (string, error) {
				assert.Equal(t, "abc", clientID)
				return "light", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"theme":"light"}`,
		},
		{
			name: "success: missing client_id uses default identifier",
			url:  "/prefs/theme",
			themeFn: func(_ context.Context, clientID string) (string, error) {
				assert.Equal(t, "default", clientID)
				return "dark", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"theme":"dark"}`,
		},
		{
			name: "error: usecase failure",
			url:  "/prefs/theme",
			themeFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to load preference"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewPreferenceHandler(&mockPreferenceUsecase{themeFn: tt.themeFn})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			newRouter(h).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestPreferenceHandler_SetTheme(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setThemeFn     func(ctx context.Context, clientID, theme string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"theme":"dark"}`,
			setThemeFn: func(_ context.Context, clientID, theme string) error {
				assert.Equal(t, "default", clientID)
				assert.Equal(t, "dark", theme)
				return nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"theme":"dark"}`,
		},
		{
			name:           "error: missing theme field",
			body:           `{}`,
			setThemeFn:     func(_ context.Context, _, _ string) error { return nil },
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"theme is required"}`,
		},
		{
			name: "error: invalid theme",
			body: `{"theme":"sepia"}`,
			setThemeFn: func(_ context.Context, _, theme string) error {
				return usecase.ErrInvalidTheme
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid theme"}`,
		},
		{
			name: "error: repository failure",
			body: `{"theme":"dark"}`,
			setThemeFn: func(_ context.Context, _, _ string) error {
				return errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to save preference"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewPreferenceHandler(&mockPreferenceUsecase{setThemeFn: tt.setThemeFn})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/prefs/theme", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(h).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
