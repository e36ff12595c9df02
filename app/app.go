// Package app wires repositories, services and controllers into an echo server.
package app

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"potager/config"
	"potager/router"

	"potager/pkg/ai"
	aiCtrlImp "potager/pkg/ai/controllerImp"
	aiRepoImp "potager/pkg/ai/repositoryImp"

	authCtrlImp "potager/pkg/auth/controllerImp"
	authService "potager/pkg/auth/service"
	authSvcImp "potager/pkg/auth/serviceImp"
	"potager/pkg/auth/token"
	userRepoImp "potager/pkg/user/repositoryImp"

	catalogCtrlImp "potager/pkg/catalog/controllerImp"
	catalogRepo "potager/pkg/catalog/repository"
	catalogRepoImp "potager/pkg/catalog/repositoryImp"
	"potager/pkg/catalog/seed"

	"potager/pkg/climate"

	communityCtrlImp "potager/pkg/community/controllerImp"
	communityRepoImp "potager/pkg/community/repositoryImp"
	communitySvcImp "potager/pkg/community/serviceImp"

	gardenCtrlImp "potager/pkg/garden/controllerImp"
	gardenRepoImp "potager/pkg/garden/repositoryImp"
	gardenSvcImp "potager/pkg/garden/serviceImp"

	healthCtrlImp "potager/pkg/health/controllerImp"
	"potager/pkg/logger"
	"potager/pkg/subscription"

	tipsCtrlImp "potager/pkg/tips/controllerImp"
	"potager/pkg/tips/embedder"
	tipsRepoImp "potager/pkg/tips/repositoryImp"
	tipsService "potager/pkg/tips/service"
	tipsSvcImp "potager/pkg/tips/serviceImp"

	"potager/pkg/watering"
	wateringCtrlImp "potager/pkg/watering/controllerImp"
	wateringRepoImp "potager/pkg/watering/repositoryImp"
	wateringSvcImp "potager/pkg/watering/serviceImp"
)

type App struct {
	Echo     *echo.Echo
	Reminder *watering.Reminder
	Auth     authService.AuthService
	Catalog  catalogRepo.CatalogRepository
	Tips     tipsService.TipsService
}

// New builds the HTTP surface over db. Nothing is started.
func New(cfg config.AppConfig, db *gorm.DB, log *logger.Logger) *App {
	// LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// embeddings are optional; keyword search otherwise
	var emb tipsSvcImp.Embedder
	if cfg.EmbEndpoint != "" && cfg.EmbAPIKey != "" {
		emb = embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}

	// repos
	users := userRepoImp.New(db)
	plants := catalogRepoImp.New(db)
	gardenRepo := gardenRepoImp.New(db)
	schedules := wateringRepoImp.New(db)

	// services
	authSvc := authSvcImp.NewAuthService(
		users,
		token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		authSvcImp.AdminAccount{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		log.Named("auth"),
	)
	gardenSvc := gardenSvcImp.NewGardenService(gardenRepo, plants, schedules)
	wateringSvc := wateringSvcImp.NewWateringService(schedules, gardenRepo, plants, log.Named("watering"))
	communitySvc := communitySvcImp.NewCommunityService(communityRepoImp.New(db))
	tipsSvc := tipsSvcImp.New(tipsRepoImp.New(db), emb, log.Named("tips"))

	e := router.New(echo.New(), router.Options{
		Authenticator: authSvc,
		Log:           log.Named("http"),
		EnableMetrics: cfg.EnableMetrics,
		AuthRateLimit: cfg.AuthRateLimit,
	}, router.Controllers{
		Auth:         authCtrlImp.NewAuthController(authSvc),
		Catalog:      catalogCtrlImp.NewCatalogController(plants),
		Garden:       gardenCtrlImp.NewGardenController(gardenSvc),
		Watering:     wateringCtrlImp.NewWateringController(wateringSvc),
		AI:           aiCtrlImp.NewAIController(llm, aiRepoImp.New(db), log.Named("ai")),
		Community:    communityCtrlImp.NewCommunityController(communitySvc),
		Subscription: subscription.NewController(log.Named("subscription")),
		Climate:      climate.NewController(),
		Tips:         tipsCtrlImp.NewTipsController(tipsSvc, cfg.TipsAllowedDomains, cfg.TipsMaxBytes),
		Health:       healthCtrlImp.NewHealthCtrl(db, plants),
	})

	return &App{
		Echo:     e,
		Reminder: watering.NewReminder(schedules, gardenRepo, log.Named("reminder")),
		Auth:     authSvc,
		Catalog:  plants,
		Tips:     tipsSvc,
	}
}

// Seed loads the plant catalog and the default care tips.
func (a *App) Seed(ctx context.Context, cfg config.AppConfig, log *logger.Logger) error {
	if _, err := seed.Seed(ctx, a.Catalog, cfg.CatalogXLSX, log.Named("seed")); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	n, err := a.Tips.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed care tips: %w", err)
	}
	if n > 0 {
		log.WithField("documents", n).Info("default care tips loaded")
	}
	return nil
}
