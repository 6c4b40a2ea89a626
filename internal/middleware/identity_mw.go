package middleware

import (
	"context"
	"strconv"
	"time"

	"foodist_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// AccessIDCookie carries the caller's durable user id.
	AccessIDCookie = "foodistAccessId"
	// AccessTokenCookie carries the caller's durable API token.
	AccessTokenCookie = "foodistAccessToken"
)

// identityLookupTimeout bounds the per-request store lookup so a slow
// database cannot stall the whole pipeline.
const identityLookupTimeout = 2 * time.Second

// IdentityMiddleware hydrates the client's identity cookies from server
// truth on every request that carries a resolved principal. The id and
// token are always re-derived from the store, never taken from anything
// the client submitted. Hydration is best-effort: on a missing user row
// or a store failure no cookies are written and the request proceeds
// unchanged.
func IdentityMiddleware(authService service.AuthService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := Principal(c)
		if !ok {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), identityLookupTimeout)
		identity, err := authService.ResolveIdentity(ctx, username)
		cancel()

		if err != nil {
			logger.WithError(err).WithField("principal", username).Error("identity cookie hydration failed")
		} else if identity != nil {
			// Session-lifetime cookies scoped to the application root,
			// readable by the browser client.
			c.SetCookie(AccessIDCookie, strconv.Itoa(identity.UserID), 0, "/", "", false, false)
			c.SetCookie(AccessTokenCookie, identity.APIToken, 0, "/", "", false, false)
		}

		c.Next()
	}
}
