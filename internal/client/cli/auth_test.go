package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/mjpark-dev/boardapp/internal/client/api"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func stubOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(a ...any) (int, error) {
		s := ""
		for i, v := range a {
			if i > 0 {
				s += " "
			}
			switch x := v.(type) {
			case string:
				s += x
			default:
				s += "?"
			}
		}
		*lines = append(*lines, s)
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

type fakeAPI struct {
	// SignUp
	signUpUser string
	signUpPass string
	signUpErr  error

	// SignIn
	signInUser string
	signInPass string
	signInErr  error

	// boards
	boards    []api.Board
	listErr   error
	created   *api.Board
	createErr error
	getErr    error
	deleted   string
	deleteErr error
	updatedID string
	updatedTo string
	updateErr error

	tokenCleared bool
}

func (f *fakeAPI) Ping(context.Context) error { return nil }
func (f *fakeAPI) SignUp(_ context.Context, user, pass string) error {
	f.signUpUser, f.signUpPass = user, pass
	return f.signUpErr
}
func (f *fakeAPI) SignIn(_ context.Context, user, pass string) (string, error) {
	f.signInUser, f.signInPass = user, pass
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "tok", nil
}
func (f *fakeAPI) CreateBoard(_ context.Context, title, description string) (*api.Board, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &api.Board{ID: "b1", Title: title, Description: description, Status: "PUBLIC"}
	return f.created, nil
}
func (f *fakeAPI) ListBoards(context.Context) ([]api.Board, error) {
	return f.boards, f.listErr
}
func (f *fakeAPI) GetBoard(_ context.Context, id string) (*api.Board, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.boards {
		if f.boards[i].ID == id {
			return &f.boards[i], nil
		}
	}
	return nil, api.ErrNotFound
}
func (f *fakeAPI) DeleteBoard(_ context.Context, id string) error {
	f.deleted = id
	return f.deleteErr
}
func (f *fakeAPI) UpdateBoardStatus(_ context.Context, id, status string) (*api.Board, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedID, f.updatedTo = id, status
	return &api.Board{ID: id, Status: status}, nil
}
func (f *fakeAPI) ClearToken() { f.tokenCleared = true }

func TestRegister_Success(t *testing.T) {
	f := &fakeAPI{}
	a := &App{api: f}

	restore := stubInputs(t, "alice", []byte("secret99"))
	defer restore()
	stubOutput(t)

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.signUpUser != "alice" {
		t.Fatalf("Register user mismatch: %q", f.signUpUser)
	}
	if f.signUpPass != "secret99" {
		t.Fatalf("Register pass mismatch: %q", f.signUpPass)
	}
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeAPI{signUpErr: api.ErrConflict}
	a := &App{api: f}

	restore := stubInputs(t, "alice", []byte("secret99"))
	defer restore()

	if err := a.Register(context.Background()); !errors.Is(err, api.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestLogin_SetsUserName(t *testing.T) {
	f := &fakeAPI{}
	a := &App{api: f}

	restore := stubInputs(t, "alice", []byte("secret99"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.userName != "alice" {
		t.Fatalf("userName not set: %q", a.userName)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state")
	}
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	f := &fakeAPI{signInErr: api.ErrUnauthorized}
	a := &App{api: f}

	restore := stubInputs(t, "alice", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("should not be logged in after failure")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAPI{}
	a := &App{api: f, userName: "alice"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.tokenCleared {
		t.Fatalf("ClearToken not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in")
	}
}
