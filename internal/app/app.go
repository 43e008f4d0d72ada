package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/controller"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/service"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/configwatcher"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/database"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/monitoring"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/security"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	ConfigPath  string
	Router      *gin.Engine
	Mongo       *mongo.Client
	DB          *gorm.DB
	rateLimiter *security.RateLimiter
	tracer      *sdktrace.TracerProvider
	stop        chan struct{}
}

type repositories struct {
	assignment repository.AssignmentRepository
}

type services struct {
	storage    *service.StorageService
	report     *service.ReportService
	export     *service.ExportService
	assignment *service.AssignmentService
}

type controllers struct {
	report     *controller.ReportController
	assignment *controller.AssignmentController
	health     *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	if cfg.Database.Driver == config.DriverMongo {
		client, db, err := database.InitMongo(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize mongodb", zap.Error(err))
		}
		a.Mongo = client
		return &repositories{assignment: repository.NewMongoAssignmentRepository(db)}
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	a.DB = db
	return &repositories{assignment: repository.NewGormAssignmentRepository(db)}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.report = service.NewReportService(repos.assignment, cfg.Database.QueryTimeout())
	s.export = service.NewExportService(s.storage)
	s.assignment = service.NewAssignmentService(repos.assignment)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		report:     controller.NewReportController(s.report, s.export),
		assignment: controller.NewAssignmentController(s.assignment),
		health:     controller.NewHealthController(repos.assignment),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// applyConfig 配置热更新：日志级别与限流速率
func (a *App) applyConfig(cfg *config.Config) {
	logger.SetLevel(cfg.Server.Mode)
	a.rateLimiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	logger.Log.Info("Runtime config applied",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("rateLimit", cfg.RateLimit.MaxRequests),
	)
}

// NewEngine 组装路由，测试中可直接传入仓储
func NewEngine(cfg *config.Config, assignmentRepo repository.AssignmentRepository) (*gin.Engine, *security.RateLimiter) {
	a := &App{Config: cfg}
	repos := &repositories{assignment: assignmentRepo}
	return a.buildRouter(cfg, repos), a.rateLimiter
}

func (a *App) buildRouter(cfg *config.Config, repos *repositories) *gin.Engine {
	services := a.initServices(repos, cfg)
	controllers := a.initControllers(services, repos)

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}

	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static(service.LocalFilesRoute, cfg.Storage.LocalPath)
	}

	return router
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		stop:       make(chan struct{}),
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	repos := app.initRepositories(cfg)
	app.Router = app.buildRouter(cfg, repos)
	app.rateLimiter.StartCleanup(app.stop)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		configFile := filepath.Join(a.ConfigPath, "config.yaml")
		if err := configwatcher.WatchConfig(watchCtx, configFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close 释放存储连接与追踪导出器
func (a *App) Close(ctx context.Context) {
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect mongodb", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
}
