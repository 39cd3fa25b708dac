package boards

import "context"

// Repository persists board records. GetByID is unscoped on purpose: the
// service needs the stored owner to run the ownership policy and to keep
// "forbidden" distinguishable from "not found". ListByOwner scopes the
// listing in the query instead of filtering per item.
type Repository interface {
	Create(ctx context.Context, board *Board) (*Board, error)
	GetByID(ctx context.Context, id string) (*Board, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Board, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
