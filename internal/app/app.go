package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/controller"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/repository"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/configwatcher"
	"stepwise_backend/pkg/database"
	"stepwise_backend/pkg/logger"
	"stepwise_backend/pkg/monitoring"
	"stepwise_backend/pkg/security"
	"stepwise_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Services *Services

	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     service.UserStore
	problem  service.ProblemStore
	progress service.ProgressStore
	cache    service.ProblemCache
}

// Services 服务集合，命令行工具与 HTTP 层共用
type Services struct {
	Auth       *service.AuthService
	Storage    *service.StorageService
	Upload     *service.UploadService
	Problem    *service.ProblemService
	Progress   *service.ProgressService
	Extraction *service.ExtractionService
	Hint       *service.HintService
	Guiding    *service.GuidingService
}

type controllers struct {
	auth     *controller.AuthController
	problem  *controller.ProblemController
	progress *controller.ProgressController
	upload   *controller.UploadController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{}
	if db == nil {
		logger.Log.Warn("No database configured, running in offline mode")
		offline := repository.NewOffline()
		repos.user = offline
		repos.problem = offline
		repos.progress = offline
	} else {
		repos.user = repository.NewUserRepository(db)
		repos.problem = repository.NewProblemRepository(db)
		repos.progress = repository.NewProgressRepository(db)
	}

	if rdb != nil {
		repos.cache = repository.NewProblemCache(rdb, a.Config.Redis.ProblemTTL)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*Services, error) {
	provider, err := llm.NewProvider(cfg.AI)
	if err != nil {
		return nil, err
	}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	return &Services{
		Auth:       service.NewAuthService(repos.user, cfg),
		Storage:    storage,
		Upload:     service.NewUploadService(storage),
		Problem:    service.NewProblemService(repos.problem, repos.cache),
		Progress:   service.NewProgressService(repos.progress, repos.problem),
		Extraction: service.NewExtractionService(provider, cfg.AI.MaxTokens),
		Hint:       service.NewHintService(provider, cfg.AI.MaxTokens),
		Guiding:    service.NewGuidingService(provider, cfg.AI.MaxTokens),
	}, nil
}

func (a *App) initControllers(s *Services) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(a.Config),
		problem:  controller.NewProblemController(s.Problem, s.Extraction, s.Hint, s.Guiding),
		progress: controller.NewProgressController(s.Progress),
		upload:   controller.NewUploadController(s.Upload),
		health:   controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化日志、存储、服务与路由，不启动监听
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.Open(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if db != nil && (cfg.Server.Mode == "debug" || cfg.ForceMigrate) {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.Services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, services.Auth)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.SetLevel)

	return app, nil
}

// Close 释放数据库、Redis 与追踪资源
func (a *App) Close() {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	logger.Log.Sync()
}

func (a *App) watchConfig(ctx context.Context) {
	if a.Config.File == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.File, func(cfg *config.Config) {
			for _, callback := range a.configCallbacks {
				callback(cfg)
			}
			logger.Log.Info("Config reloaded", zap.String("file", a.Config.File))
		})
		if err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	a.watchConfig(ctx)

	errCh := make(chan error, 1)
	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
