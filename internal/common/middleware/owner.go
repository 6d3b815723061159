package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const OwnerTokenHeader = "X-Owner-Token"

// OwnerAuthorizer checks that token grants management of giveawayID.
type OwnerAuthorizer interface {
	AuthorizeOwner(ctx context.Context, token, giveawayID string) error
}

// GiveawayResolver returns the id of the giveaway addressed by the request.
type GiveawayResolver func(c *gin.Context) (string, error)

// RequireOwner rejects the request unless the X-Owner-Token header carries a
// live token issued for the resolved giveaway.
func RequireOwner(resolve GiveawayResolver, authorizer OwnerAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		giveawayID, err := resolve(c)
		if err != nil {
			SendError(c, err)
			c.Abort()
			return
		}

		token := c.GetHeader(OwnerTokenHeader)
		if err := authorizer.AuthorizeOwner(c.Request.Context(), token, giveawayID); err != nil {
			SendError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
