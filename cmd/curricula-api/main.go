package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/acadify/curricula-api/api/swagger"
	"github.com/acadify/curricula-api/internal/handler"
	"github.com/acadify/curricula-api/internal/middleware"
	"github.com/acadify/curricula-api/internal/repository"
	"github.com/acadify/curricula-api/internal/saga"
	"github.com/acadify/curricula-api/internal/service"
	"github.com/acadify/curricula-api/internal/storeclient"
	"github.com/acadify/curricula-api/pkg/cache"
	"github.com/acadify/curricula-api/pkg/config"
	"github.com/acadify/curricula-api/pkg/logger"
	corsmiddleware "github.com/acadify/curricula-api/pkg/middleware/cors"
	reqidmiddleware "github.com/acadify/curricula-api/pkg/middleware/requestid"
)

// @title Curricula API
// @version 0.1.0
// @description Study plan availability, elective progress and curriculum creation
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	store := storeclient.New(cfg.Store, logr, metricsSvc)
	transaction := saga.NewTransaction(store, logr)

	planSvc := service.NewPlanService(store, logr)
	creationSvc := service.NewCreationService(transaction, validate, logr)
	exportSvc := service.NewExportService(planSvc, logr)

	planHandler := handler.NewPlanHandler(planSvc)
	curriculumHandler := handler.NewCurriculumHandler(creationSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/programs/:id/plan", planHandler.Plan)
		api.POST("/plan/resolve", planHandler.Resolve)
		api.GET("/programs/:id/electives/progress", planHandler.ElectiveProgress)
		api.POST("/curricula", curriculumHandler.Create)

		if cfg.Exports.Enabled {
			api.GET("/programs/:id/plan/export", exportHandler.Plan)
			api.GET("/programs/:id/electives/export", exportHandler.Electives)
		}

		if cfg.Drafts.Enabled {
			redisClient, err := cache.NewRedis(cfg.Redis)
			if err != nil {
				logr.Sugar().Warnw("redis unavailable, drafts disabled", "error", err)
			} else {
				draftRepo := repository.NewDraftRepository(redisClient, logr)
				draftSvc := service.NewDraftService(draftRepo, validate, logr, cfg.Drafts.TTL)
				draftHandler := handler.NewDraftHandler(draftSvc)

				api.POST("/drafts", draftHandler.Create)
				api.GET("/drafts/:id", draftHandler.Get)
				api.PUT("/drafts/:id", draftHandler.Update)
				api.DELETE("/drafts/:id", draftHandler.Delete)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
