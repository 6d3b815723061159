package models

import (
	"time"
)

// GiveawayStatus represents the lifecycle state of a giveaway
type GiveawayStatus string

const (
	GiveawayStatusActive GiveawayStatus = "active" // Accepting entries
	GiveawayStatusClosed GiveawayStatus = "closed" // Entries closed, no winner yet
	GiveawayStatusDrawn  GiveawayStatus = "drawn"  // Winner recorded
)

func (s GiveawayStatus) IsValid() bool {
	switch s {
	case GiveawayStatusActive, GiveawayStatusClosed, GiveawayStatusDrawn:
		return true
	}
	return false
}

// Giveaway is a listing of currency offered by its creator.
// WinnerID is set if and only if Status is drawn.
type Giveaway struct {
	ID                string         `json:"id"`
	Slug              string         `json:"slug"`
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	CreatorName       string         `json:"creator_name"`
	CreatorSecretHash string         `json:"-"`
	StrictMode        bool           `json:"allow_strict"`
	Currencies
	Status    GiveawayStatus `json:"status"`
	WinnerID  *string        `json:"winner_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (g *Giveaway) IsActive() bool {
	return g.Status == GiveawayStatusActive
}

// GiveawayCreate is the validated-on-service input for a new giveaway.
type GiveawayCreate struct {
	Title         string
	Description   string
	CreatorName   string
	CreatorSecret string
	StrictMode    bool
	Currencies    Currencies
}

// GiveawayResponse is the public view of a giveaway.
type GiveawayResponse struct {
	*Giveaway
	EntryCount       int64            `json:"entry_count"`
	ActiveCurrencies []CurrencyAmount `json:"currencies"`
}

func NewGiveawayResponse(g *Giveaway, entryCount int64) *GiveawayResponse {
	return &GiveawayResponse{
		Giveaway:         g,
		EntryCount:       entryCount,
		ActiveCurrencies: g.Currencies.Active(),
	}
}
