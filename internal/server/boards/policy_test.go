package boards

import (
	"errors"
	"testing"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

func TestAuthorize_OwnerAllowed(t *testing.T) {
	t.Parallel()

	var policy OwnershipPolicy
	p := &users.Principal{ID: "u1", UserName: "alice"}

	for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
		if err := policy.Authorize(p, "u1", action); err != nil {
			t.Fatalf("owner denied %s: %v", action, err)
		}
	}
}

func TestAuthorize_NonOwnerDenied(t *testing.T) {
	t.Parallel()

	var policy OwnershipPolicy
	p := &users.Principal{ID: "u2", UserName: "bob"}

	for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
		err := policy.Authorize(p, "u1", action)
		if !errors.Is(err, common.ErrorForbidden) {
			t.Fatalf("non-owner %s: expected common.ErrorForbidden, got %v", action, err)
		}
	}
}

func TestAuthorize_NilPrincipalDenied(t *testing.T) {
	t.Parallel()

	var policy OwnershipPolicy
	if err := policy.Authorize(nil, "u1", ActionRead); !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected common.ErrorForbidden, got %v", err)
	}
}

func TestAssignOwner_AlwaysThePrincipal(t *testing.T) {
	t.Parallel()

	var policy OwnershipPolicy
	p := &users.Principal{ID: "u7"}

	if got := policy.AssignOwner(p); got != "u7" {
		t.Fatalf("AssignOwner = %q, want u7", got)
	}
}
