package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/config"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/handler"
	"github.com/itchan-dev/forum-api/internal/jwt"
	"github.com/itchan-dev/forum-api/internal/logger"
	"github.com/itchan-dev/forum-api/internal/middleware"
	"github.com/itchan-dev/forum-api/internal/service"
	"github.com/itchan-dev/forum-api/internal/storage/memory"
	"github.com/itchan-dev/forum-api/internal/storage/pg"
	"github.com/itchan-dev/forum-api/internal/utils"
)

// Storage is what a storage driver has to provide.
type Storage interface {
	domain.ThreadRepository
	domain.CommentRepository
	domain.UserRepository
	Ping(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage, storage)
	comment := service.NewComment(storage, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(auth, thread, comment, storage),
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}

func newStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Public.StorageDriver {
	case config.StorageDriverMemory:
		logger.For("storage.memory").Warn("using in-memory storage, data is lost on restart")
		return memory.New(utils.NewId), nil
	case config.StorageDriverPostgres:
		storage, err := pg.New(cfg.Private.Pg, utils.NewId)
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.StorageDriver)
	}
}
