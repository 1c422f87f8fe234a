package routes

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vanshajvr/FinTrack/internal/controllers"
)

// Store is what the router needs from the storage service.
type Store interface {
	controllers.Ledger
	Ping(ctx context.Context) error
}

func Register(store Store, allowOrigins []string, log zerolog.Logger) *gin.Engine {
	txc := controllers.TransactionController{Store: store, Log: log}
	rep := controllers.ReportsController{Store: store, Log: log}
	cat := controllers.CategoryController{Store: store, Log: log}

	r := gin.New()
	r.Use(requestID(), requestLogger(log), recoverer(log))
	r.Use(cors.New(corsConfig(allowOrigins)))

	started := time.Now()
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		status, code := "healthy", http.StatusOK
		dbOK := store.Ping(ctx) == nil
		if !dbOK {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":       status,
			"uptime":       time.Since(started).Round(time.Second).String(),
			"db_connected": dbOK,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api/v1")

	api.POST("/transactions", txc.CreateOrList)
	api.GET("/transactions", txc.CreateOrList)
	api.GET("/transactions/export", txc.Export)

	api.GET("/summary", rep.GetSummary)
	api.GET("/reports/categories", rep.GetCategoryTotals)
	api.GET("/reports/currencies", rep.GetCurrencySummaries)
	api.GET("/reports/daily", rep.GetDailyTotals)

	api.GET("/categories", cat.List)

	return r
}

// corsConfig allows every origin when the list is empty or contains "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
	}
	return cfg
}
