package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/auth/controller"
	"potager/pkg/auth/service"
	"potager/pkg/middleware"
)

type authCtrl struct{ s service.AuthService }

func NewAuthController(s service.AuthService) controller.AuthController { return &authCtrl{s: s} }

func (h *authCtrl) Register(c echo.Context) error {
	var in service.RegisterInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	sess, err := h.s.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *authCtrl) Login(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("invalid json")
	}
	sess, err := h.s.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *authCtrl) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *authCtrl) AdminLogin(c echo.Context) error {
	sess, err := h.s.AdminLogin(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}
