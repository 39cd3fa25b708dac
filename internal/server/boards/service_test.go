package boards

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

// fakeBoardRepo is an in-memory Repository.
type fakeBoardRepo struct {
	boards map[string]*Board
	nextID int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: map[string]*Board{}}
}

func (f *fakeBoardRepo) Create(ctx context.Context, board *Board) (*Board, error) {
	f.nextID++
	board.ID = fmt.Sprintf("b%d", f.nextID)
	copied := *board
	f.boards[board.ID] = &copied
	return board, nil
}

func (f *fakeBoardRepo) GetByID(ctx context.Context, id string) (*Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBoardRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Board, error) {
	var result []*Board
	for i := 1; i <= f.nextID; i++ {
		if b, ok := f.boards[fmt.Sprintf("b%d", i)]; ok && b.OwnerID == ownerID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBoardRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	b, ok := f.boards[id]
	if !ok {
		return common.ErrorNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBoardRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.boards[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.boards, id)
	return nil
}

var (
	alice = &users.Principal{ID: "owner-a", UserName: "alice"}
	bob   = &users.Principal{ID: "owner-b", UserName: "bob"}
)

func TestCreate_OwnerIsAlwaysThePrincipal(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)

	board, err := s.Create(context.Background(), alice, "trip", "packing list")
	require.NoError(t, err)
	require.NotEmpty(t, board.ID)
	require.Equal(t, alice.ID, board.OwnerID)
	require.Equal(t, StatusPublic, board.Status)
}

func TestGet_OwnerScoped(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)

	board, err := s.Create(context.Background(), alice, "t", "d")
	require.NoError(t, err)

	got, err := s.Get(context.Background(), alice, board.ID)
	require.NoError(t, err)
	require.Equal(t, board.ID, got.ID)

	_, err = s.Get(context.Background(), bob, board.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)

	_, err = s.Get(context.Background(), alice, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_ReturnsOnlyCallersBoards(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, alice, fmt.Sprintf("a%d", i), "d")
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := s.Create(ctx, bob, fmt.Sprintf("b%d", i), "d")
		require.NoError(t, err)
	}

	mine, err := s.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, b := range mine {
		require.Equal(t, alice.ID, b.OwnerID)
	}
}

func TestDelete_OwnerScoped(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)
	ctx := context.Background()

	board, err := s.Create(ctx, alice, "t", "d")
	require.NoError(t, err)

	err = s.Delete(ctx, bob, board.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)
	_, stillThere := repo.boards[board.ID]
	require.True(t, stillThere, "foreign delete must not remove the board")

	require.NoError(t, s.Delete(ctx, alice, board.ID))
	require.ErrorIs(t, s.Delete(ctx, alice, board.ID), common.ErrorNotFound)
}

func TestUpdateStatus_TransitionsAndIdempotence(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)
	ctx := context.Background()

	board, err := s.Create(ctx, alice, "t", "d")
	require.NoError(t, err)

	updated, err := s.UpdateStatus(ctx, alice, board.ID, "PRIVATE")
	require.NoError(t, err)
	require.Equal(t, StatusPrivate, updated.Status)

	// Repeating the same transition is a no-op, not an error.
	updated, err = s.UpdateStatus(ctx, alice, board.ID, "PRIVATE")
	require.NoError(t, err)
	require.Equal(t, StatusPrivate, updated.Status)

	updated, err = s.UpdateStatus(ctx, alice, board.ID, "PUBLIC")
	require.NoError(t, err)
	require.Equal(t, StatusPublic, updated.Status)
}

func TestUpdateStatus_InvalidValueLeavesStoredStatus(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)
	ctx := context.Background()

	board, err := s.Create(ctx, alice, "t", "d")
	require.NoError(t, err)

	_, err = s.UpdateStatus(ctx, alice, board.ID, "ARCHIVED")
	require.ErrorIs(t, err, common.ErrInvalidStatus)
	require.Equal(t, StatusPublic, repo.boards[board.ID].Status)
}

func TestUpdateStatus_NonOwnerGetsForbiddenNotValidationError(t *testing.T) {
	repo := newFakeBoardRepo()
	s := NewService(repo)
	ctx := context.Background()

	board, err := s.Create(ctx, alice, "t", "d")
	require.NoError(t, err)

	// Even with a garbage status the non-owner must see the ownership
	// failure, otherwise the validation error would confirm the board
	// exists.
	_, err = s.UpdateStatus(ctx, bob, board.ID, "ARCHIVED")
	require.ErrorIs(t, err, common.ErrorForbidden)

	_, err = s.UpdateStatus(ctx, bob, board.ID, "PRIVATE")
	require.ErrorIs(t, err, common.ErrorForbidden)
	require.Equal(t, StatusPublic, repo.boards[board.ID].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := NewService(newFakeBoardRepo())

	_, err := s.UpdateStatus(context.Background(), alice, "missing", "PRIVATE")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
