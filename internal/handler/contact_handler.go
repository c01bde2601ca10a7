package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "saasland/internal/errors"
	"saasland/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Message string  `json:"message" validate:"required"`
	Subject *string `json:"subject"`
}

// ContactResponse acknowledges a stored message.
type ContactResponse struct {
	OK bool `json:"ok"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message data"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Message, req.Subject); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ContactResponse{OK: true})
}
