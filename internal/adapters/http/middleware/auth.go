package middleware

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truongteam/medusa-admin/internal/adapters/http/dto"
	"github.com/truongteam/medusa-admin/internal/platform/config"
)

// ContextKeyClaims is the gin key of the extracted claims.
const ContextKeyClaims = "claims"

const (
	defaultSubjectHeader = "X-User-ID"
	defaultRolesHeader   = "X-User-Roles"
	defaultScopesHeader  = "X-User-Scopes"
)

// Claims are the caller's identity as asserted by the gateway, which has
// already validated the token.
type Claims struct {
	Subject string
	Roles   []string
	Scopes  []string
}

// HasRole reports whether the caller has role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasScope reports whether the caller was granted scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ExtractClaims reads the identity headers named in cfg. Roles are comma
// separated, scopes space separated.
func ExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	subject, roles, scopes := defaultSubjectHeader, defaultRolesHeader, defaultScopesHeader

	if cfg != nil {
		subject = cmp.Or(cfg.SubjectHeader, subject)
		roles = cmp.Or(cfg.RolesHeader, roles)
		scopes = cmp.Or(cfg.ScopesHeader, scopes)
	}

	claims := &Claims{Subject: c.GetHeader(subject)}

	for r := range strings.SplitSeq(c.GetHeader(roles), ",") {
		if r = strings.TrimSpace(r); r != "" {
			claims.Roles = append(claims.Roles, r)
		}
	}

	claims.Scopes = strings.Fields(c.GetHeader(scopes))

	return claims
}

// GetClaims returns the claims stored by RequireAuth, or nil.
func GetClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(ContextKeyClaims); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}

	return nil
}

// RequireAuth rejects requests without a subject.
func RequireAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ExtractClaims(c, cfg)
		if claims.Subject == "" {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole rejects callers without role.
func RequireRole(cfg *config.AuthConfig, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			claims = ExtractClaims(c, cfg)
			c.Set(ContextKeyClaims, claims)
		}

		if !claims.HasRole(role) {
			dto.AbortWithCode(c, dto.ErrorCodeForbidden, "insufficient permissions: role "+role+" required")
			return
		}

		c.Next()
	}
}

// EditorAccess returns the chain guarding the editor routes: callers must be
// authenticated and mutating requests need the editor role. Disabled auth
// yields no handlers.
func EditorAccess(cfg *config.AuthConfig) []gin.HandlerFunc {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	requireEditor := RequireRole(cfg, cfg.EditorRole)

	return []gin.HandlerFunc{
		RequireAuth(cfg),
		func(c *gin.Context) {
			if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
				c.Next()
				return
			}

			requireEditor(c)
		},
	}
}
