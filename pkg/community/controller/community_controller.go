package controller

import "github.com/labstack/echo/v4"

type CommunityController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Like(c echo.Context) error
	Comments(c echo.Context) error
	Comment(c echo.Context) error
}
