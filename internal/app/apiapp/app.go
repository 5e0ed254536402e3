package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/config"
	s3infra "github.com/Sagar2372004/punarmilan-backend-sub001/internal/infra/s3"
	pgrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/postgres"
	redrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/redis"
	authsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/auth"
	discoverysvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
	entsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/entitlements"
	eventsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/events"
	mediasvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/media"
	photosvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/photos"
	scoringsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/scoring"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	dispatcher *eventsvc.Dispatcher
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}

	discoveryRepo := pgrepo.NewDiscoveryRepo(pool)
	entitlementRepo := pgrepo.NewEntitlementRepo(pool)
	eventRepo := pgrepo.NewEventRepo(pool)
	statsCacheRepo := redrepo.NewStatsCacheRepo(redisClient)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	entitlementService := entsvc.NewService(entitlementRepo, entsvc.Config{
		DefaultIsPremium: cfg.Discovery.DefaultIsPremium,
	})
	photoStorage := mediasvc.NewPhotoStorage(s3Client, cfg.S3.Bucket)
	dispatcher := eventsvc.NewDispatcher(eventRepo, eventsvc.Config{
		BufferSize: cfg.Discovery.EventBufferSize,
	}, log)
	dispatcher.Start(ctx)

	scorer := scoringsvc.NewScorer(scoringsvc.Weights{
		AgeFit:    cfg.Discovery.Weights.AgeFit,
		HeightFit: cfg.Discovery.Weights.HeightFit,
		Religion:  cfg.Discovery.Weights.Religion,
		Location:  cfg.Discovery.Weights.Location,
		Education: cfg.Discovery.Weights.Education,
		Lifestyle: cfg.Discovery.Weights.Lifestyle,
	})
	photoPolicy := photosvc.NewPolicy(photosvc.Config{
		RequireMutualLike: cfg.Discovery.RequireMutualLike,
	})

	discoveryService := discoverysvc.NewService(discoveryRepo, scorer, photoPolicy, discoverysvc.Config{
		NearRadiusKM:     cfg.Discovery.NearRadiusKM,
		OnlineWindow:     cfg.Discovery.OnlineWindow,
		NewProfileWindow: cfg.Discovery.NewProfileWindow,
		DefaultPageSize:  cfg.Discovery.DefaultPageSize,
		MaxPageSize:      cfg.Discovery.MaxPageSize,
		PoolLimit:        cfg.Discovery.PoolLimit,
		PhotoURLTTL:      cfg.Discovery.PhotoURLTTL,
		StatsCacheTTL:    cfg.Discovery.StatsCacheTTL,
		DefaultIsPremium: cfg.Discovery.DefaultIsPremium,
	})
	discoveryService.AttachPremium(entitlementService)
	discoveryService.AttachEvents(dispatcher)
	discoveryService.AttachStatsCache(statsCacheRepo)
	if s3Client != nil {
		discoveryService.AttachPhotoSigner(photoStorage)
		if err := photoStorage.EnsureBucket(ctx); err != nil {
			log.Warn("photo bucket check failed", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		DiscoveryService: discoveryService,
		JWTManager:       jwtManager,
		Logger:           log,
		Config:           cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		dispatcher: dispatcher,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
