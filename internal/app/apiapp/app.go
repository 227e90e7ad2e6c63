package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Brooklyn-808/friendr/internal/config"
	"github.com/Brooklyn-808/friendr/internal/repo/jsonfile"
	"github.com/Brooklyn-808/friendr/internal/repo/memory"
	redrepo "github.com/Brooklyn-808/friendr/internal/repo/redis"
	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	profilesvc "github.com/Brooklyn-808/friendr/internal/services/profiles"
	ratesvc "github.com/Brooklyn-808/friendr/internal/services/rate"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	snapshotStore, err := jsonfile.NewStore(cfg.Data.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("init snapshot store: %w", err)
	}
	snap, err := snapshotStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	profileRepo := memory.NewProfileRepo()
	profileRepo.Restore(snap.Profiles)
	likeRepo := memory.NewLikeRepo()
	likeRepo.Restore(snap.Likes)
	seenRepo := memory.NewSeenRepo()
	seenRepo.Restore(snap.Seen)
	notificationRepo := memory.NewNotificationRepo()
	notificationRepo.Restore(snap.Notifications)
	conversationRepo := memory.NewConversationRepo()
	conversationRepo.Restore(snap.Conversations)

	flusher := jsonfile.NewFlusher(snapshotStore, jsonfile.Sources{
		Profiles:      profileRepo,
		Likes:         likeRepo,
		Seen:          seenRepo,
		Notifications: notificationRepo,
		Conversations: conversationRepo,
	})

	var redisClient *goredis.Client
	var rateLimiter *ratesvc.Limiter
	if cfg.Redis.Enabled {
		redisClient = redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis init failed, like rate limiting disabled", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			rateRepo := redrepo.NewRateRepo(redisClient)
			rateLimiter = ratesvc.NewLimiter(rateRepo, cfg.Limits.LikesPerMinute, cfg.Limits.LikesPer10Seconds)
		}
	}

	profileService := profilesvc.NewService(profileRepo, flusher)
	matchDeps := matchsvc.Dependencies{
		Profiles:      profileRepo,
		Likes:         likeRepo,
		Seen:          seenRepo,
		Notifications: notificationRepo,
		Conversations: conversationRepo,
		Persister:     flusher,
	}
	if rateLimiter != nil {
		matchDeps.RateLimiter = rateLimiter
	}
	matchService := matchsvc.NewService(matchDeps)

	RegisterRoutes(r, Dependencies{
		ProfileService: profileService,
		MatchService:   matchService,
		Logger:         log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started",
		zap.String("addr", a.cfg.HTTP.Addr),
		zap.String("snapshot_path", a.cfg.Data.SnapshotPath),
	)
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
