package climate

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
)

type Controller struct{ now func() time.Time }

func NewController() *Controller { return &Controller{now: time.Now} }

// GET /api/premium/weather?city=Lyon&days=7
func (h *Controller) Weather(c echo.Context) error {
	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > MaxDays {
			return apperr.BadRequest("days must be between 1 and 14")
		}
		days = v
	}
	return c.JSON(http.StatusOK, NewForecast(c.QueryParam("city"), h.now(), days))
}

// GET /api/premium/lunar-calendar?month=2025-06
func (h *Controller) Lunar(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = h.now().Format("2006-01")
	}
	cal, err := NewLunarCalendar(month)
	if err != nil {
		return apperr.BadRequest("month must be YYYY-MM")
	}
	return c.JSON(http.StatusOK, cal)
}
