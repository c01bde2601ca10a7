package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saasland/internal/model"
)

// PricingHandler serves the static pricing list.
type PricingHandler struct{}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// plans are compiled-in; changing pricing is a code change.
var plans = []model.Plan{
	{
		ID:     "starter",
		Name:   "Starter",
		Price:  "$0",
		Period: "/mo",
		Features: []string{
			"Up to 3 projects",
			"Basic analytics",
			"Community support",
		},
		CTA: "Get Started",
	},
	{
		ID:     "pro",
		Name:   "Pro",
		Price:  "$19",
		Period: "/mo",
		Features: []string{
			"Unlimited projects",
			"Advanced analytics",
			"Email support",
			"Automation rules",
		},
		CTA:     "Start Free Trial",
		Popular: true,
	},
	{
		ID:     "business",
		Name:   "Business",
		Price:  "$49",
		Period: "/mo",
		Features: []string{
			"Everything in Pro",
			"Team seats (5)",
			"Priority support",
			"Audit logs",
		},
		CTA: "Contact Sales",
	},
}

// List godoc
// @Summary List pricing plans
// @Tags pricing
// @Produce json
// @Success 200 {array} model.Plan
// @Router /pricing [get]
func (h *PricingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, plans)
}
