package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/event-catering/internal/auth"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

const ContextPrincipal = "principal"

type AuthConfig struct {
	Tokens     *auth.TokenIssuer
	Users      accountdomain.Repository
	Sources    []string
	CookieName string
}

// Auth verifies the caller's token and reloads the account so a role
// change or deletion takes effect before the token expires.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFrom(c, cfg.Sources, cfg.CookieName)
		if raw == "" {
			httperr.Unauthorized(c, "missing_token", "Authentication required.")
			return
		}

		claims, err := cfg.Tokens.Verify(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			return
		}

		u, err := cfg.Users.GetByID(c.Request.Context(), claims.User.ID)
		if errors.Is(err, domain.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			return
		}
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "auth gate: load user", "error", err)
			httperr.Internal(c, "internal_error", "Unexpected error.")
			return
		}

		c.Set(ContextPrincipal, authz.PrincipalOf(u))
		c.Next()
	}
}

func tokenFrom(c *gin.Context, sources []string, cookieName string) string {
	for _, src := range sources {
		switch src {
		case "cookie":
			if v, err := c.Cookie(cookieName); err == nil && v != "" {
				return v
			}
		case "header":
			parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
				return strings.TrimSpace(parts[1])
			}
		}
	}
	return ""
}

// RequireRole must run after Auth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing_token", "Authentication required.")
			return
		}
		if !allowed[p.Role] {
			httperr.Forbidden(c, "forbidden", "You do not have access to this resource.")
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}

// MustPrincipal is for handlers mounted behind Auth.
func MustPrincipal(c *gin.Context) authz.Principal {
	return c.MustGet(ContextPrincipal).(authz.Principal)
}
