package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saasland/internal/config"
	"saasland/internal/store"
)

// HealthHandler serves the liveness and diagnostic endpoints.
type HealthHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(s store.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{store: s, cfg: cfg}
}

// MessageResponse is a trivial liveness payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// DiagResponse reports connection state for human debugging. It always
// answers 200; a broken store shows up in the body, not the status code.
type DiagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root godoc
// @Summary Liveness message
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "SaaS Landing Backend Running"})
}

// Hello godoc
// @Summary API liveness message
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /hello [get]
func (h *HealthHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

// Diag godoc
// @Summary Store connection diagnostics
// @Tags health
// @Produce json
// @Success 200 {object} DiagResponse
// @Router /test [get]
func (h *HealthHandler) Diag(c echo.Context) error {
	resp := DiagResponse{
		Backend:          "running",
		Database:         "unavailable",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if h.cfg.DatabaseURL != "" {
		resp.DatabaseURL = "set"
	}
	if h.cfg.DatabaseName != "" {
		resp.DatabaseName = "set"
	}

	st := h.store.Status(c.Request().Context())
	if !st.Connected {
		return c.JSON(http.StatusOK, resp)
	}
	resp.ConnectionStatus = "Connected"
	if st.Err != "" {
		resp.Database = "connected but erroring: " + st.Err
	} else {
		resp.Database = "connected"
	}
	if st.Collections != nil {
		resp.Collections = st.Collections
	}
	return c.JSON(http.StatusOK, resp)
}
