package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/middleware"
	"path-of-sharing/internal/features/giveaway/models/dto"
	"path-of-sharing/internal/features/giveaway/realtime"
	giveawayservice "path-of-sharing/internal/features/giveaway/service"
)

type GiveawayHandler struct {
	giveaways giveawayservice.GiveawayService
	entries   giveawayservice.EntryService
	winners   giveawayservice.WinnerService
	owners    giveawayservice.OwnerService
	hub       *realtime.Hub
	upgrader  websocket.Upgrader
}

// NewGiveawayHandler wires the HTTP surface. allowedOrigin restricts
// websocket upgrades; an empty value accepts any origin.
func NewGiveawayHandler(
	giveaways giveawayservice.GiveawayService,
	entries giveawayservice.EntryService,
	winners giveawayservice.WinnerService,
	owners giveawayservice.OwnerService,
	hub *realtime.Hub,
	allowedOrigin string,
) *GiveawayHandler {
	return &GiveawayHandler{
		giveaways: giveaways,
		entries:   entries,
		winners:   winners,
		owners:    owners,
		hub:       hub,
		upgrader:  newUpgrader(allowedOrigin),
	}
}

func (h *GiveawayHandler) RegisterRoutes(router *gin.RouterGroup) {
	wrap := middleware.HandleErrorWrapper()

	router.POST("/entries", wrap(h.createEntry))

	giveaways := router.Group("/giveaways")
	{
		giveaways.POST("", wrap(h.create))
		giveaways.GET("", wrap(h.list))
		giveaways.GET("/:slug", wrap(h.getBySlug))
		giveaways.GET("/:slug/entries", wrap(h.listEntries))
		giveaways.GET("/:slug/entries/count", wrap(h.countEntries))
		giveaways.GET("/:slug/entries/ws", wrap(h.entriesFeed))
		giveaways.POST("/:slug/owner/session", wrap(h.createOwnerSession))
	}

	owned := giveaways.Group("/:slug", middleware.RequireOwner(h.resolveGiveaway, h.owners))
	{
		owned.DELETE("/owner/session", wrap(h.deleteOwnerSession))
		owned.PATCH("/status", wrap(h.updateStatus))
		owned.POST("/winner", wrap(h.selectWinner))
		owned.POST("/draw", wrap(h.draw))
	}
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		_ = c.Error(apperrors.New(apperrors.ErrCodeValidation, "Invalid request body").
			WithDetail("reason", err.Error()))
		return false
	}
	return true
}

// @Summary Enter a giveaway
// @Description Admits one entry per giveaway and client address
// @Tags entries
// @Accept json
// @Produce json
// @Param input body dto.EntryCreateRequest true "Entry"
// @Success 201 {object} dto.DataResponse{data=models.Entry}
// @Failure 400 {object} middleware.ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} middleware.ErrorResponse "Unknown giveaway"
// @Failure 409 {object} middleware.ErrorResponse "Already entered"
// @Failure 410 {object} middleware.ErrorResponse "Giveaway closed"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /entries [post]
func (h *GiveawayHandler) createEntry(c *gin.Context) {
	var req dto.EntryCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.entries.Admit(c.Request.Context(), req.ToModel(middleware.ClientAddress(c.Request)))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: entry})
}

// @Summary Create a giveaway
// @Tags giveaways
// @Accept json
// @Produce json
// @Param input body dto.GiveawayCreateRequest true "Giveaway"
// @Success 201 {object} dto.DataResponse{data=models.GiveawayResponse}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /giveaways [post]
func (h *GiveawayHandler) create(c *gin.Context) {
	var req dto.GiveawayCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	giveaway, err := h.giveaways.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: giveaway})
}

// @Summary List giveaways
// @Description Newest first
// @Tags giveaways
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse{data=[]models.GiveawayResponse}
// @Failure 400 {object} middleware.ErrorResponse
// @Router /giveaways [get]
func (h *GiveawayHandler) list(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	giveaways, err := h.giveaways.List(c.Request.Context(), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Data: giveaways, Limit: limit, Offset: offset})
}

// @Summary Get a giveaway
// @Tags giveaways
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Success 200 {object} dto.DataResponse{data=models.GiveawayResponse}
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug} [get]
func (h *GiveawayHandler) getBySlug(c *gin.Context) {
	giveaway, err := h.giveaways.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: giveaway})
}

// @Summary List entries of a giveaway
// @Description In admission order
// @Tags entries
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Success 200 {object} dto.DataResponse{data=[]models.Entry}
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/entries [get]
func (h *GiveawayHandler) listEntries(c *gin.Context) {
	giveaway, err := h.giveaways.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.entries.ListByGiveaway(c.Request.Context(), giveaway.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: entries})
}

// @Summary Count entries of a giveaway
// @Tags entries
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Success 200 {object} dto.DataResponse{data=dto.CountResponse}
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/entries/count [get]
func (h *GiveawayHandler) countEntries(c *gin.Context) {
	giveaway, err := h.giveaways.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	count, err := h.entries.Count(c.Request.Context(), giveaway.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.CountResponse{Count: count}})
}

// @Summary Open an owner session
// @Description Verifies the creator password and returns a token for the X-Owner-Token header
// @Tags owner
// @Accept json
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Param input body dto.OwnerSessionRequest true "Creator password"
// @Success 201 {object} dto.DataResponse{data=models.OwnerSession}
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/owner/session [post]
func (h *GiveawayHandler) createOwnerSession(c *gin.Context) {
	var req dto.OwnerSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.owners.VerifyOwner(c.Request.Context(), c.Param("slug"), req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: session})
}

// @Summary Close an owner session
// @Tags owner
// @Param slug path string true "Giveaway slug"
// @Security OwnerToken
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/owner/session [delete]
func (h *GiveawayHandler) deleteOwnerSession(c *gin.Context) {
	if err := h.owners.Revoke(c.Request.Context(), c.GetHeader(middleware.OwnerTokenHeader)); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Open or close a giveaway
// @Tags owner
// @Accept json
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Param input body dto.StatusUpdateRequest true "Target status"
// @Security OwnerToken
// @Success 200 {object} dto.DataResponse{data=models.Giveaway}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/status [patch]
func (h *GiveawayHandler) updateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	giveaway, err := h.giveaways.TransitionStatus(c.Request.Context(), ownedGiveaway(c).ID, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: giveaway})
}

// @Summary Pick the winner manually
// @Tags owner
// @Accept json
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Param input body dto.SelectWinnerRequest true "Winning entry"
// @Security OwnerToken
// @Success 200 {object} dto.DataResponse{data=models.GiveawayResponse}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/winner [post]
func (h *GiveawayHandler) selectWinner(c *gin.Context) {
	var req dto.SelectWinnerRequest
	if !bindJSON(c, &req) {
		return
	}

	id := ownedGiveaway(c).ID
	if err := h.winners.SelectManual(c.Request.Context(), id, req.EntryID); err != nil {
		_ = c.Error(err)
		return
	}

	giveaway, err := h.giveaways.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: giveaway})
}

// @Summary Draw a random winner
// @Tags owner
// @Produce json
// @Param slug path string true "Giveaway slug"
// @Security OwnerToken
// @Success 200 {object} dto.DataResponse{data=dto.DrawResponse}
// @Failure 422 {object} middleware.ErrorResponse "No entries"
// @Router /giveaways/{slug}/draw [post]
func (h *GiveawayHandler) draw(c *gin.Context) {
	winner, giveaway, err := h.winners.DrawRandom(c.Request.Context(), ownedGiveaway(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.DrawResponse{Winner: winner, Giveaway: giveaway}})
}

