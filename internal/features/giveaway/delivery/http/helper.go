package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/features/giveaway/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	ownedGiveawayKey = "owned_giveaway"
)

func pagination(c *gin.Context) (limit, offset int, err error) {
	limit, offset = defaultPageSize, 0

	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageSize {
			return 0, 0, apperrors.NewValidationError("limit", "must be between 1 and 100")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apperrors.NewValidationError("offset", "must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// resolveGiveaway loads the giveaway named by :slug for owner routes and
// keeps it on the context.
func (h *GiveawayHandler) resolveGiveaway(c *gin.Context) (string, error) {
	giveaway, err := h.giveaways.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return "", err
	}
	c.Set(ownedGiveawayKey, giveaway.Giveaway)
	return giveaway.ID, nil
}

func ownedGiveaway(c *gin.Context) *models.Giveaway {
	return c.MustGet(ownedGiveawayKey).(*models.Giveaway)
}
