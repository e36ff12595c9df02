package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	List(c echo.Context) error
	Add(c echo.Context) error
	Update(c echo.Context) error
	Remove(c echo.Context) error
	Water(c echo.Context) error
	Waterings(c echo.Context) error
}
