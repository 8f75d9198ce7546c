package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"perkpal-backend/internal/config"
	infraCache "perkpal-backend/internal/infrastructure/cache"
	"perkpal-backend/internal/infrastructure/database"
	"perkpal-backend/internal/infrastructure/email"
	"perkpal-backend/internal/infrastructure/storage"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/pkg/cache"
	"perkpal-backend/pkg/jwt"
	"perkpal-backend/pkg/logger"

	categoryHandler "perkpal-backend/internal/domains/category/handler"
	categoryRepo "perkpal-backend/internal/domains/category/repository"
	categoryService "perkpal-backend/internal/domains/category/service"
	leadHandler "perkpal-backend/internal/domains/lead/handler"
	leadRepo "perkpal-backend/internal/domains/lead/repository"
	leadService "perkpal-backend/internal/domains/lead/service"
	mediaHandler "perkpal-backend/internal/domains/media/handler"
	mediaRepo "perkpal-backend/internal/domains/media/repository"
	mediaService "perkpal-backend/internal/domains/media/service"
	pageHandler "perkpal-backend/internal/domains/page/handler"
	pageRepo "perkpal-backend/internal/domains/page/repository"
	pageService "perkpal-backend/internal/domains/page/service"
	perkHandler "perkpal-backend/internal/domains/perk/handler"
	perkRepo "perkpal-backend/internal/domains/perk/repository"
	perkService "perkpal-backend/internal/domains/perk/service"
	postHandler "perkpal-backend/internal/domains/post/handler"
	postRepo "perkpal-backend/internal/domains/post/repository"
	postService "perkpal-backend/internal/domains/post/service"
	seoHandler "perkpal-backend/internal/domains/seo/handler"
	seoService "perkpal-backend/internal/domains/seo/service"
	settingsHandler "perkpal-backend/internal/domains/settings/handler"
	settingsRepo "perkpal-backend/internal/domains/settings/repository"
	settingsService "perkpal-backend/internal/domains/settings/service"
	userHandler "perkpal-backend/internal/domains/user/handler"
	userRepo "perkpal-backend/internal/domains/user/repository"
	userService "perkpal-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything is constructed
// once at startup; construction order is config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    storage.ObjectStorage
	Email      email.EmailService
	Queue      *asynq.Client
	JWTManager *jwt.Manager
	Executor   *ordering.Executor

	CategoryRepo categoryRepo.CategoryRepository
	PerkRepo     perkRepo.PerkRepository
	LeadRepo     leadRepo.LeadRepository
	UserRepo     userRepo.UserRepository
	PostRepo     postRepo.PostRepository
	MediaRepo    mediaRepo.MediaRepository
	PageRepo     pageRepo.PageRepository
	SettingsRepo settingsRepo.SettingsRepository

	CategoryService categoryService.ServiceInterface
	PerkService     perkService.ServiceInterface
	LeadService     leadService.ServiceInterface
	UserService     userService.ServiceInterface
	PostService     postService.ServiceInterface
	MediaService    mediaService.ServiceInterface
	PageService     pageService.ServiceInterface
	SettingsService settingsService.ServiceInterface
	SEOService      seoService.ServiceInterface

	CategoryHandler *categoryHandler.CategoryHandler
	PerkHandler     *perkHandler.PerkHandler
	LeadHandler     *leadHandler.LeadHandler
	UserHandler     *userHandler.UserHandler
	PostHandler     *postHandler.PostHandler
	MediaHandler    *mediaHandler.MediaHandler
	PageHandler     *pageHandler.PageHandler
	SettingsHandler *settingsHandler.SettingsHandler
	SEOHandler      *seoHandler.SEOHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{"environment": cfg.App.Environment})

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Addr,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Ping(ctx); err != nil {
		// A cold cache only costs latency, so startup continues.
		logger.Warn("redis unreachable at startup", err)
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(ctx, storage.MinIOConfig{
		Endpoint:  c.Config.MinIO.Endpoint,
		AccessKey: c.Config.MinIO.AccessKey,
		SecretKey: c.Config.MinIO.SecretKey,
		Bucket:    c.Config.MinIO.Bucket,
		UseSSL:    c.Config.MinIO.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.Email = email.NewSMTPEmailService(
		c.Config.Email.SMTPHost,
		c.Config.Email.SMTPPort,
		c.Config.Email.From,
	)

	c.Queue = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.Executor = ordering.NewExecutor(db.Pool)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.PerkRepo = perkRepo.NewPostgresPerkRepository(pool)
	c.LeadRepo = leadRepo.NewPostgresLeadRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.MediaRepo = mediaRepo.NewPostgresMediaRepository(pool)
	c.PageRepo = pageRepo.NewPostgresPageRepository(pool)
	c.SettingsRepo = settingsRepo.NewPostgresSettingsRepository(pool)
}

func (c *Container) initServices() {
	cacheTTL := time.Duration(c.Config.Site.CacheTTLSecs) * time.Second

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Executor, c.Cache)
	c.PerkService = perkService.NewPerkService(c.PerkRepo, c.Executor, c.Cache, cacheTTL)
	c.LeadService = leadService.NewLeadService(c.LeadRepo, c.PerkRepo, c.Queue)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.PostService = postService.NewPostService(c.PostRepo, c.Cache, cacheTTL)
	c.MediaService = mediaService.NewMediaService(c.MediaRepo, c.Storage)
	c.PageService = pageService.NewPageService(c.PageRepo, c.Executor, c.Cache, cacheTTL)
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.Cache, cacheTTL)
	c.SEOService = seoService.NewSEOService(
		c.PerkRepo,
		c.PostRepo,
		c.PageRepo,
		c.CategoryRepo,
		c.SettingsService,
		c.Cache,
		c.Config.Site.BaseURL,
		cacheTTL,
	)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PerkHandler = perkHandler.NewPerkHandler(c.PerkService)
	c.LeadHandler = leadHandler.NewLeadHandler(c.LeadService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.PageHandler = pageHandler.NewPageHandler(c.PageService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.SEOHandler = seoHandler.NewSEOHandler(c.SEOService)
}

// Cleanup releases external connections. Called from graceful shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Warn("failed to close task queue client", err)
		}
	}
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", err)
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container resources released", nil)
}
