package boards

import (
	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

// Action names the operations the ownership policy decides on.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// OwnershipPolicy is the single authorization rule of the system: only the
// owner of a resource may act on it.
type OwnershipPolicy struct{}

// Authorize permits the action iff the principal owns the resource. A deny
// is a hard common.ErrorForbidden, never silently degraded, so callers can
// distinguish it from a lookup miss.
func (OwnershipPolicy) Authorize(p *users.Principal, resourceOwnerID string, action Action) error {
	if p == nil || p.ID != resourceOwnerID {
		return common.ErrorForbidden
	}
	return nil
}

// AssignOwner returns the owner id for a resource the principal is
// creating. Client-supplied owner values are never honored.
func (OwnershipPolicy) AssignOwner(p *users.Principal) string {
	return p.ID
}
