package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"honorsinventory/internal/config"
	"honorsinventory/internal/domain/events"
	"honorsinventory/internal/domain/inventory"
	"honorsinventory/internal/middleware"
	"honorsinventory/internal/pkg/response"
)

type routerDeps struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	inventory *inventory.Handler
	events    *events.Handler
}

func newRouter(d routerDeps) *gin.Engine {
	if d.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.log),
		middleware.Recovery(d.log),
		middleware.CORS(d.cfg.CORSAllowedOrigins),
	)

	r.GET("/healthz", healthz(d.db))

	api := r.Group("/api")
	d.inventory.RegisterRoutes(api)
	d.events.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Route not found")
	})
	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, response.CodeUnavailable, "Database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
