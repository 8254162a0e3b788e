package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/helpers"
	"github.com/devaldi/portfolio-api/pkg/response"
)

// AuthUser is the authenticated account attached to the request context.
// It deliberately carries no password hash.
type AuthUser struct {
	ID       string
	Username string
	Email    string
}

const ctxAuthUserKey = "authUser"

// CurrentUser returns the account RequireAuth resolved for this request.
// The bool is false on routes that never went through RequireAuth.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(ctxAuthUserKey)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}

// RequireAuth guards protected routes. It reads the Authorization header's
// Bearer token, verifies it with the codec, resolves the subject against the
// user store and puts an AuthUser into the context. Every failure ends the
// request with 401; authentication failures are terminal, never retried.
func RequireAuth(users repository.UserRepository, codec *helpers.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		userID, err := codec.Verify(token)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// unknown subject and store failure both read as a failed
			// credential; no detail leaks to the caller
			response.AbortMessage(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		c.Set(ctxAuthUserKey, AuthUser{ID: u.ID, Username: u.Username, Email: u.Email})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
