package controller

import "github.com/labstack/echo/v4"

type AIController interface {
	Analyze(c echo.Context) error
	History(c echo.Context) error
	Scan(c echo.Context) error
}
