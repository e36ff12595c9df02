package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/middleware"
	"potager/pkg/watering/controller"
	"potager/pkg/watering/service"
)

type wateringCtrl struct{ s service.WateringService }

func NewWateringController(s service.WateringService) controller.WateringController {
	return &wateringCtrl{s: s}
}

func (h *wateringCtrl) Create(c echo.Context) error {
	var in service.CreateInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	if in.GardenEntryID == "" {
		return apperr.BadRequest("garden_entry_id is required")
	}
	sch, err := h.s.Create(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sch)
}

// Get answers 200 with a JSON null when the entry has no schedule.
func (h *wateringCtrl) Get(c echo.Context) error {
	sch, err := h.s.Get(c.Request().Context(), middleware.CurrentUser(c), c.Param("garden_entry_id"))
	if err != nil {
		return err
	}
	if sch == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *wateringCtrl) Update(c echo.Context) error {
	var p service.SchedulePatch
	if err := c.Bind(&p); err != nil {
		return apperr.BadRequest("invalid json")
	}
	sch, err := h.s.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("garden_entry_id"), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *wateringCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Request().Context(), middleware.CurrentUser(c), c.Param("garden_entry_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Watering schedule deleted"})
}
