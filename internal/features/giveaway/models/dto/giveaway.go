package dto

import (
	"path-of-sharing/internal/features/giveaway/models"
)

// GiveawayCreateRequest is the body of POST /giveaways
type GiveawayCreateRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"max=2000"`
	CreatorName     string `json:"creator_name" binding:"required,max=64"`
	CreatorPassword string `json:"creator_password" binding:"required,max=72"`
	AllowStrict     bool   `json:"allow_strict"`
	models.Currencies
}

func (r *GiveawayCreateRequest) ToModel() *models.GiveawayCreate {
	return &models.GiveawayCreate{
		Title:         r.Title,
		Description:   r.Description,
		CreatorName:   r.CreatorName,
		CreatorSecret: r.CreatorPassword,
		StrictMode:    r.AllowStrict,
		Currencies:    r.Currencies,
	}
}

// EntryCreateRequest is the body of POST /entries
type EntryCreateRequest struct {
	GiveawayID        string `json:"giveaway_id" binding:"required,uuid"`
	ParticipantName   string `json:"participant_name" binding:"required"`
	RedditName        string `json:"reddit_name"`
	RedditProfileLink string `json:"reddit_profile_link"`
}

func (r *EntryCreateRequest) ToModel(clientAddress string) *models.EntryCreate {
	return &models.EntryCreate{
		GiveawayID:        r.GiveawayID,
		ParticipantName:   r.ParticipantName,
		RedditName:        r.RedditName,
		RedditProfileLink: r.RedditProfileLink,
		ClientAddress:     clientAddress,
	}
}

type StatusUpdateRequest struct {
	Status models.GiveawayStatus `json:"status" binding:"required,oneof=active closed"`
}

type SelectWinnerRequest struct {
	EntryID string `json:"entry_id" binding:"required,uuid"`
}

type OwnerSessionRequest struct {
	Password string `json:"password" binding:"required"`
}

// DataResponse wraps successful payloads as {"data": ...}
type DataResponse struct {
	Data interface{} `json:"data"`
}

type ListResponse struct {
	Data   interface{} `json:"data"`
	Limit  int         `json:"limit,omitempty"`
	Offset int         `json:"offset,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type DrawResponse struct {
	Winner   *models.Entry    `json:"winner"`
	Giveaway *models.Giveaway `json:"giveaway"`
}
