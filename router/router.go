package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	aiController "potager/pkg/ai/controller"
	authController "potager/pkg/auth/controller"
	catalogController "potager/pkg/catalog/controller"
	"potager/pkg/climate"
	communityController "potager/pkg/community/controller"
	gardenController "potager/pkg/garden/controller"
	"potager/pkg/logger"
	"potager/pkg/metrics"
	"potager/pkg/middleware"
	"potager/pkg/subscription"
	tipsController "potager/pkg/tips/controller"
	wateringController "potager/pkg/watering/controller"
)

type Controllers struct {
	Auth         authController.AuthController
	Catalog      catalogController.CatalogController
	Garden       gardenController.GardenController
	Watering     wateringController.WateringController
	AI           aiController.AIController
	Community    communityController.CommunityController
	Subscription *subscription.Controller
	Climate      *climate.Controller
	Tips         tipsController.TipsController
	Health       interface{ Health(echo.Context) error }
}

type Options struct {
	Authenticator middleware.Authenticator
	Log           *logger.Logger
	EnableMetrics bool
	AuthRateLimit int
}

func New(e *echo.Echo, opt Options, c Controllers) *echo.Echo {
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(opt.Log)

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	if opt.EnableMetrics {
		e.Use(metrics.Middleware())
		e.GET("/metrics", metrics.Handler())
	}
	e.Use(opt.Log.Middleware())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", c.Health.Health)

	requireUser := middleware.RequireUser(opt.Authenticator)
	requirePremium := middleware.RequirePremium()
	requireAdmin := middleware.RequireAdmin()

	api := e.Group("/api")
	api.GET("", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"message": "Le potager malin API", "version": "1.0.0"})
	})

	// auth
	auth := api.Group("/auth")
	if opt.AuthRateLimit > 0 {
		auth.Use(middleware.NewRateLimiter(float64(opt.AuthRateLimit), 2*opt.AuthRateLimit).Middleware())
	}
	auth.POST("/register", c.Auth.Register)
	auth.POST("/login", c.Auth.Login)
	auth.POST("/admin-login", c.Auth.AdminLogin)
	auth.GET("/me", c.Auth.Me, requireUser)

	// catalog
	api.GET("/plants", c.Catalog.List)
	api.GET("/plants/:id", c.Catalog.Get)

	// garden
	garden := api.Group("/my-garden", requireUser)
	garden.GET("", c.Garden.List)
	garden.POST("", c.Garden.Add)
	garden.PUT("/:id", c.Garden.Update)
	garden.DELETE("/:id", c.Garden.Remove)
	garden.POST("/:id/water", c.Garden.Water)
	garden.GET("/:id/waterings", c.Garden.Waterings)

	// watering schedules
	ws := api.Group("/watering-schedules", requireUser)
	ws.POST("", c.Watering.Create)
	ws.GET("/:garden_entry_id", c.Watering.Get)
	ws.PUT("/:garden_entry_id", c.Watering.Update)
	ws.DELETE("/:garden_entry_id", c.Watering.Delete)

	// AI
	api.POST("/ai/analyze", c.AI.Analyze, requireUser, requirePremium)
	api.GET("/ai/history", c.AI.History, requireUser, requirePremium)
	api.POST("/scanner/analyze", c.AI.Scan, requireUser)

	// community
	api.GET("/community/posts", c.Community.List)
	api.POST("/community/posts", c.Community.Create, requireUser)
	api.POST("/community/posts/:id/like", c.Community.Like, requireUser)
	api.GET("/community/posts/:id/comments", c.Community.Comments)
	api.POST("/community/posts/:id/comments", c.Community.Comment, requireUser)

	// subscription
	api.GET("/subscription/plans", c.Subscription.Plans)
	api.POST("/subscription/create-checkout", c.Subscription.CreateCheckout, requireUser)
	api.POST("/subscription/webhook", c.Subscription.Webhook)

	// premium content
	premium := api.Group("/premium", requireUser, requirePremium)
	premium.GET("/weather", c.Climate.Weather)
	premium.GET("/lunar-calendar", c.Climate.Lunar)
	premium.GET("/care-tips", c.Tips.Search)
	premium.POST("/care-tips", c.Tips.IngestText, requireAdmin)
	premium.POST("/care-tips/url", c.Tips.IngestURL, requireAdmin)

	return e
}
