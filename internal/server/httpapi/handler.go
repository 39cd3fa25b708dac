package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/boards"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=4,max=20"`
}

type createBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateStatusRequest struct {
	// Raw on purpose: the status value is validated in the core, after
	// authorization.
	Status string `json:"status" binding:"required"`
}

type boardResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerID     string `json:"ownerId"`
}

func toBoardResponse(b *boards.Board) boardResponse {
	return boardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Status:      string(b.Status),
		OwnerID:     b.OwnerID,
	}
}

func (s *Server) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", user.UserName)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.UserName})
}

func (s *Server) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

func (s *Server) createBoard(c *gin.Context) {
	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, err := s.boards.Create(c.Request.Context(), principalFromContext(c), req.Title, req.Description)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBoardResponse(board))
}

func (s *Server) listBoards(c *gin.Context) {
	list, err := s.boards.List(c.Request.Context(), principalFromContext(c))
	if err != nil {
		s.renderError(c, err)
		return
	}

	result := make([]boardResponse, 0, len(list))
	for _, b := range list {
		result = append(result, toBoardResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"data": result, "count": len(result)})
}

func (s *Server) getBoard(c *gin.Context) {
	board, err := s.boards.Get(c.Request.Context(), principalFromContext(c), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

func (s *Server) deleteBoard(c *gin.Context) {
	if err := s.boards.Delete(c.Request.Context(), principalFromContext(c), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) updateBoardStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, err := s.boards.UpdateStatus(c.Request.Context(), principalFromContext(c), c.Param("id"), req.Status)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// renderError maps core errors onto HTTP responses. Forbidden is presented
// as 404 so an unauthorized caller cannot probe which board ids exist; the
// two stay distinct inside the core and in the log line below.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorForbidden):
		s.logger.Warn(c.Request.Context(), "forbidden access masked as not found", "path", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrorNotFound.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
