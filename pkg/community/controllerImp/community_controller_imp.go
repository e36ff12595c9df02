package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/community/controller"
	"potager/pkg/community/service"
	"potager/pkg/middleware"
)

type communityCtrl struct{ s service.CommunityService }

func NewCommunityController(s service.CommunityService) controller.CommunityController {
	return &communityCtrl{s: s}
}

func (h *communityCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *communityCtrl) Create(c echo.Context) error {
	var in service.PostInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	p, err := h.s.Publish(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *communityCtrl) Like(c echo.Context) error {
	res, err := h.s.ToggleLike(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *communityCtrl) Comments(c echo.Context) error {
	out, err := h.s.Comments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *communityCtrl) Comment(c echo.Context) error {
	var in service.CommentInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	out, err := h.s.Comment(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
