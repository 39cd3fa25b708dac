package boards

import (
	"context"
	"fmt"

	"github.com/mjpark-dev/boardapp/internal/server/users"
)

// Service exposes the owner-scoped board operations. Every mutating or
// single-resource read runs the same sequence: load, authorize, then (for
// status updates) validate the requested value, then persist. Running the
// policy before status validation keeps a non-owner from learning whether
// a board exists through a validation error.
type Service struct {
	repo   Repository
	policy OwnershipPolicy
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new board owned by the principal. The owner always
// comes from the policy, never from client input. New boards start PUBLIC.
func (s *Service) Create(ctx context.Context, p *users.Principal, title, description string) (*Board, error) {
	board := &Board{
		Title:       title,
		Description: description,
		Status:      StatusPublic,
		OwnerID:     s.policy.AssignOwner(p),
	}

	board, err := s.repo.Create(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("error creating board: %w", err)
	}
	return board, nil
}

// Get returns a single board if the principal owns it.
func (s *Service) Get(ctx context.Context, p *users.Principal, id string) (*Board, error) {
	board, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(p, board.OwnerID, ActionRead); err != nil {
		return nil, err
	}
	return board, nil
}

// List returns the principal's boards. Scoping happens in the query, not
// with a per-item check.
func (s *Service) List(ctx context.Context, p *users.Principal) ([]*Board, error) {
	return s.repo.ListByOwner(ctx, p.ID)
}

// Delete removes a board if the principal owns it.
func (s *Service) Delete(ctx context.Context, p *users.Principal, id string) error {
	board, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.Authorize(p, board.OwnerID, ActionDelete); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// UpdateStatus transitions a board between PRIVATE and PUBLIC. The raw
// status is validated only after authorization succeeds, so a non-owner
// sending garbage still gets the ownership failure.
func (s *Service) UpdateStatus(ctx context.Context, p *users.Principal, id, rawStatus string) (*Board, error) {
	board, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(p, board.OwnerID, ActionUpdate); err != nil {
		return nil, err
	}
	if err := board.TransitionTo(rawStatus); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, board.Status); err != nil {
		return nil, err
	}
	return board, nil
}
