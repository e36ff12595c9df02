package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/garden/controller"
	"potager/pkg/garden/service"
	"potager/pkg/middleware"
)

type gardenCtrl struct{ s service.GardenService }

func NewGardenController(s service.GardenService) controller.GardenController {
	return &gardenCtrl{s: s}
}

func (h *gardenCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *gardenCtrl) Add(c echo.Context) error {
	var in service.AddInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	g, err := h.s.Add(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (h *gardenCtrl) Update(c echo.Context) error {
	var p service.GardenPatch
	if err := c.Bind(&p); err != nil {
		return apperr.BadRequest("invalid json")
	}
	g, err := h.s.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (h *gardenCtrl) Remove(c echo.Context) error {
	if err := h.s.Remove(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Plant removed from garden"})
}

// POST /api/my-garden/:id/water
func (h *gardenCtrl) Water(c echo.Context) error {
	var in service.WaterInput
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&in); err != nil {
			return apperr.BadRequest("invalid json")
		}
	}
	g, err := h.s.MarkWatered(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (h *gardenCtrl) Waterings(c echo.Context) error {
	out, err := h.s.History(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
