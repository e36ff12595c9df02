package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"potager/entities"
	"potager/pkg/ai"
	"potager/pkg/ai/controller"
	"potager/pkg/ai/repository"
	"potager/pkg/apperr"
	"potager/pkg/logger"
	"potager/pkg/middleware"
)

const historyLimit = 100

type aiCtrl struct {
	client ai.Client
	repo   repository.AnalysisRepository
	log    *logger.Logger
}

func NewAIController(client ai.Client, repo repository.AnalysisRepository, log *logger.Logger) controller.AIController {
	return &aiCtrl{client: client, repo: repo, log: log}
}

type analyzeReq struct {
	ImageBase64  string  `json:"image_base64"`
	AnalysisType string  `json:"analysis_type"`
	UserPlantID  *string `json:"user_plant_id"`
}

// POST /api/ai/analyze (premium)
func (h *aiCtrl) Analyze(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid json")
	}
	if !ai.ValidAnalysisType(req.AnalysisType) {
		return apperr.BadRequest("analysis_type must be identification, diagnostic or soins")
	}
	ctx := c.Request().Context()
	result, err := h.client.Analyze(ctx, req.AnalysisType, req.ImageBase64)
	if err != nil {
		return apperr.Internal("analysis failed", err)
	}

	a := &entities.AIAnalysis{
		UserID:       middleware.CurrentUser(c).ID,
		ImageBase64:  req.ImageBase64,
		AnalysisType: req.AnalysisType,
		Result:       result,
		UserPlantID:  req.UserPlantID,
	}
	if v, ok := result["confidence"].(float64); ok {
		a.Confidence = &v
	}
	if err := h.repo.Create(ctx, a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *aiCtrl) History(c echo.Context) error {
	out, err := h.repo.Recent(c.Request().Context(), middleware.CurrentUser(c).ID, historyLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// POST /api/scanner/analyze
func (h *aiCtrl) Scan(c echo.Context) error {
	var req struct {
		ImageBase64 string `json:"image_base64"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid json")
	}
	if strings.TrimSpace(req.ImageBase64) == "" {
		return apperr.BadRequest("image_base64 is required")
	}
	res, err := h.client.Scan(c.Request().Context(), req.ImageBase64)
	if err != nil {
		h.log.WithError(err).Error("scanner failed")
		return apperr.Internal("Error analyzing image", err)
	}
	return c.JSON(http.StatusOK, res)
}
