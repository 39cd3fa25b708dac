package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mjpark-dev/boardapp/internal/client/api"
	"github.com/mjpark-dev/boardapp/internal/client/config"
)

// apiClient defines the server operations the CLI needs. The real api.Client
// satisfies this interface; tests can provide a lightweight stub.
type apiClient interface {
	Ping(ctx context.Context) error
	SignUp(ctx context.Context, userName, password string) error
	SignIn(ctx context.Context, userName, password string) (string, error)
	CreateBoard(ctx context.Context, title, description string) (*api.Board, error)
	ListBoards(ctx context.Context) ([]api.Board, error)
	GetBoard(ctx context.Context, id string) (*api.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	UpdateBoardStatus(ctx context.Context, id, status string) (*api.Board, error)
	ClearToken()
}

type App struct {
	config   *config.Config
	api      apiClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
