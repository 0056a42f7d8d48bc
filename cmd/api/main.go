package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/edusync/scheduler-api/api/swagger"
	"github.com/edusync/scheduler-api/internal/handler"
	"github.com/edusync/scheduler-api/internal/middleware"
	"github.com/edusync/scheduler-api/internal/repository"
	"github.com/edusync/scheduler-api/internal/service"
	"github.com/edusync/scheduler-api/pkg/cache"
	"github.com/edusync/scheduler-api/pkg/config"
	"github.com/edusync/scheduler-api/pkg/database"
	"github.com/edusync/scheduler-api/pkg/logger"
	corsmiddleware "github.com/edusync/scheduler-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edusync/scheduler-api/pkg/middleware/requestid"
)

// @title Class Scheduler API
// @version 1.0.0
// @description Scheduling backend managing teachers, classrooms and class bookings
// @BasePath /api
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	validate := validator.New()

	teacherRepo := repository.NewTeacherRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	conflictChecker := service.NewScheduleConflictChecker(scheduleRepo, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, validate, logr)
	classroomSvc := service.NewClassroomService(classroomRepo, validate, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, teacherRepo, classroomRepo, conflictChecker, cacheSvc, validate, logr)

	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	classroomHandler := handler.NewClassroomHandler(classroomSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		teachers := api.Group("/teachers")
		teachers.GET("", teacherHandler.List)
		teachers.GET("/:id", teacherHandler.Get)
		teachers.POST("", teacherHandler.Create)
		teachers.DELETE("", teacherHandler.Delete)

		classrooms := api.Group("/classrooms")
		classrooms.GET("", classroomHandler.List)
		classrooms.GET("/:id", classroomHandler.Get)
		classrooms.POST("", classroomHandler.Create)
		classrooms.PATCH("", classroomHandler.Update)
		classrooms.DELETE("", classroomHandler.Delete)

		schedules := api.Group("/schedules")
		schedules.GET("", scheduleHandler.List)
		schedules.GET("/export", scheduleHandler.Export)
		schedules.POST("", scheduleHandler.Create)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
