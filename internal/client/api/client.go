// Package api implements the HTTP client for the board server. It wraps the
// JSON endpoints in typed methods and maps HTTP failures to sentinel errors
// so callers can branch with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mjpark-dev/boardapp/internal/common"
)

// Board mirrors the server's board representation.
type Board struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerID     string `json:"ownerId"`
}

type credentialsRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type createBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type listResponse struct {
	Data  []Board `json:"data"`
	Count int     `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to a single board server. It holds the access token obtained
// from SignIn and attaches it to subsequent requests.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ClearToken drops the stored access token, returning the client to an
// unauthenticated state.
func (c *Client) ClearToken() {
	c.accessToken = ""
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		e := &errorResponse{}
		_ = json.NewDecoder(resp.Body).Decode(e)
		return mapError(resp.StatusCode, e.Error)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func mapError(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("server error (%d): %s", code, msg)
	}
}

// Ping checks server reachability via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) SignUp(ctx context.Context, userName, password string) error {
	req := &credentialsRequest{UserName: userName, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// SignIn authenticates and stores the returned access token on the client.
func (c *Client) SignIn(ctx context.Context, userName, password string) (string, error) {
	req := &credentialsRequest{UserName: userName, Password: password}
	resp := &tokenResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", req, resp); err != nil {
		return "", err
	}
	c.accessToken = resp.AccessToken
	return resp.AccessToken, nil
}

func (c *Client) CreateBoard(ctx context.Context, title, description string) (*Board, error) {
	req := &createBoardRequest{Title: title, Description: description}
	board := &Board{}
	if err := c.do(ctx, http.MethodPost, "/boards", req, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (c *Client) ListBoards(ctx context.Context) ([]Board, error) {
	resp := &listResponse{}
	if err := c.do(ctx, http.MethodGet, "/boards", nil, resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetBoard(ctx context.Context, id string) (*Board, error) {
	board := &Board{}
	if err := c.do(ctx, http.MethodGet, "/boards/"+id, nil, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+id, nil, nil)
}

func (c *Client) UpdateBoardStatus(ctx context.Context, id, status string) (*Board, error) {
	req := &updateStatusRequest{Status: status}
	board := &Board{}
	if err := c.do(ctx, http.MethodPatch, "/boards/"+id+"/status", req, board); err != nil {
		return nil, err
	}
	return board, nil
}
