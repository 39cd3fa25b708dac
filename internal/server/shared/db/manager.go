// Package db aggregates the storage layer: the connection pool, the
// repositories, and the schema migrations run at startup.
package db

import (
	"context"
	"database/sql"

	"github.com/mjpark-dev/boardapp/internal/server/boards"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Boards() boards.Repository
}
