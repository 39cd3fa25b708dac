// Package server initializes and runs the application server: storage,
// services, the HTTP API, and graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mjpark-dev/boardapp/internal/logging"
	"github.com/mjpark-dev/boardapp/internal/server/auth"
	"github.com/mjpark-dev/boardapp/internal/server/boards"
	"github.com/mjpark-dev/boardapp/internal/server/config"
	"github.com/mjpark-dev/boardapp/internal/server/httpapi"
	"github.com/mjpark-dev/boardapp/internal/server/shared/db"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        db.RepositoryManager
	userService  *users.Service
	boardService *boards.Service
	tokens       *auth.JWTManager
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewJWTManager([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	us := users.NewService(repos.Users(), hasher, tokens)
	bs := boards.NewService(repos.Boards())

	return &App{
		config:       cfg,
		logger:       logger,
		repos:        repos,
		userService:  us,
		boardService: bs,
		tokens:       tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.boardService, app.tokens)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
