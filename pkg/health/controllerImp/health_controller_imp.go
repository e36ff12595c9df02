package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type CatalogCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthCtrl struct {
	db      *gorm.DB
	catalog CatalogCounter
}

func NewHealthCtrl(db *gorm.DB, catalog CatalogCounter) *HealthCtrl {
	return &HealthCtrl{db: db, catalog: catalog}
}

type check struct {
	OK    bool   `json:"ok"`
	Err   string `json:"err,omitempty"`
	Count *int64 `json:"count,omitempty"`
}

// Health answers 503 when the database is unreachable or the catalog is empty.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	cat := check{OK: true}
	if !db.OK {
		cat = check{Err: "database unavailable"}
	} else if n, err := h.catalog.Count(ctx); err != nil {
		cat = check{Err: "count: " + err.Error()}
	} else {
		cat.Count = &n
		if n == 0 {
			cat = check{Err: "catalog is empty", Count: &n}
		}
	}

	allOK := db.OK && cat.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"service":    "Le potager malin",
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"catalog":  cat,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
