package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/partnerportal/internal/identity"
)

const (
	contextSubjectKey = "subject"
	contextRoleKey    = "role"
)

// AuthRequired verifies the bearer token and injects the caller's subject and
// role into the request context. Every partner-scoped route sits behind it.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		id, err := s.verifier.VerifyToken(token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := identity.WithSubject(c.Request.Context(), id.Subject)
		if id.Role != "" {
			ctx = identity.WithRole(ctx, id.Role)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextSubjectKey, id.Subject)
		c.Set(contextRoleKey, id.Role)
		c.Next()
	}
}

// AdminRequired gates admin routes on the configured admin role claim.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := identity.RoleFromContext(c.Request.Context())
		if !ok || role != s.cfg.AdminRole {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
