package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/users"
)

const principalKey = "principal"

// authRequired gates every protected route. It extracts the bearer token,
// validates signature and expiry, then re-resolves the subject against the
// account store: a token can legitimately outlive its account, and such a
// token must not authenticate. The token's lifetime is never refreshed or
// extended here.
func (s *Server) authRequired(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	tokenString, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok || tokenString == "" {
		s.abortUnauthorized(c, common.ErrMissingCredentials)
		return
	}

	userID, err := s.tokens.Validate(tokenString)
	if err != nil {
		s.abortUnauthorized(c, err)
		return
	}

	principal, err := s.users.ResolvePrincipal(c.Request.Context(), userID)
	if err != nil {
		s.abortUnauthorized(c, err)
		return
	}

	c.Set(principalKey, principal)
	c.Next()
}

func (s *Server) abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// principalFromContext returns the principal stored by authRequired.
func principalFromContext(c *gin.Context) *users.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*users.Principal)
	return p
}
