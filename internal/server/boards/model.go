// Package boards implements the owned board resource: the status state
// machine, the ownership policy, persistence and the board service.
package boards

import (
	"fmt"
	"time"

	"github.com/mjpark-dev/boardapp/internal/common"
)

// Status is the board visibility. Exactly two values exist and nothing
// else may ever be persisted.
type Status string

const (
	StatusPrivate Status = "PRIVATE"
	StatusPublic  Status = "PUBLIC"
)

// ParseStatus validates a raw status literal. Matching is exact and
// case-sensitive; anything else fails with common.ErrInvalidStatus.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPrivate, StatusPublic:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidStatus, raw)
	}
}

// Board is a resource with exactly one owner. OwnerID is assigned at
// creation and immutable afterwards.
type Board struct {
	ID          string
	Title       string
	Description string
	Status      Status
	OwnerID     string
	CreatedAt   time.Time
}

// TransitionTo applies a status transition. Both directions between
// PRIVATE and PUBLIC are allowed, so the machine only validates the
// requested value; persisting the change is the caller's job.
func (b *Board) TransitionTo(raw string) error {
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	b.Status = status
	return nil
}
