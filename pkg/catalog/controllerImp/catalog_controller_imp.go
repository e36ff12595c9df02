package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"potager/pkg/catalog/controller"
	"potager/pkg/catalog/repository"
)

type catalogCtrl struct{ repo repository.CatalogRepository }

func NewCatalogController(repo repository.CatalogRepository) controller.CatalogController {
	return &catalogCtrl{repo: repo}
}

// GET /api/plants?category=potager
func (h *catalogCtrl) List(c echo.Context) error {
	plants, err := h.repo.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("category")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plants)
}

func (h *catalogCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
