// Package httpapi exposes the auth and board services over a REST API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mjpark-dev/boardapp/internal/logging"
	"github.com/mjpark-dev/boardapp/internal/server/auth"
	"github.com/mjpark-dev/boardapp/internal/server/boards"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

// userSvc is the slice of users.Service the transport needs.
type userSvc interface {
	Register(ctx context.Context, username, password string) (*users.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ResolvePrincipal(ctx context.Context, userID string) (*users.Principal, error)
}

// boardSvc is the slice of boards.Service the transport needs.
type boardSvc interface {
	Create(ctx context.Context, p *users.Principal, title, description string) (*boards.Board, error)
	Get(ctx context.Context, p *users.Principal, id string) (*boards.Board, error)
	List(ctx context.Context, p *users.Principal) ([]*boards.Board, error)
	Delete(ctx context.Context, p *users.Principal, id string) error
	UpdateStatus(ctx context.Context, p *users.Principal, id, rawStatus string) (*boards.Board, error)
}

type Server struct {
	address string
	users   userSvc
	boards  boardSvc
	tokens  *auth.JWTManager
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, us *users.Service, bs *boards.Service, tokens *auth.JWTManager) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		boards:  bs,
		tokens:  tokens,
	}
}

// router wires the gin engine: recovery, request logging, CORS, the public
// auth endpoints and the token-gated board endpoints.
func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", s.signUp)
		authGroup.POST("/signin", s.signIn)
	}

	boardGroup := r.Group("/boards", s.authRequired)
	{
		boardGroup.POST("", s.createBoard)
		boardGroup.GET("", s.listBoards)
		boardGroup.GET("/:id", s.getBoard)
		boardGroup.DELETE("/:id", s.deleteBoard)
		boardGroup.PATCH("/:id/status", s.updateBoardStatus)
	}

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
