// Package subscription exposes the premium plan and a stand-in checkout.
// No payment is taken.
package subscription

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/logger"
	"potager/pkg/middleware"
)

type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceEuros float64  `json:"price_euros"`
	Features   []string `json:"features"`
}

var premiumPlan = Plan{
	ID:         "premium-monthly",
	Name:       "Premium Plant Care",
	PriceEuros: 9.99,
	Features: []string{
		"Identification IA illimitée",
		"Diagnostic de santé des plantes",
		"Recommandations personnalisées",
		"Calendrier de soins intelligent",
		"Support prioritaire",
	},
}

type Controller struct{ log *logger.Logger }

func NewController(log *logger.Logger) *Controller { return &Controller{log: log} }

func (h *Controller) Plans(c echo.Context) error {
	return c.JSON(http.StatusOK, []Plan{premiumPlan})
}

func (h *Controller) CreateCheckout(c echo.Context) error {
	u := middleware.CurrentUser(c)
	h.log.WithField("user_id", u.ID).Info("checkout session requested")
	return c.JSON(http.StatusOK, map[string]string{
		"checkout_url": "https://checkout.stripe.com/mock-session",
		"session_id":   "cs_mock_123456",
	})
}

func (h *Controller) Webhook(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
