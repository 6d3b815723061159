package models

import "time"

// UnknownAddress is recorded when the client address cannot be determined.
// Entries with it are exempt from the one-entry-per-address rule.
const UnknownAddress = "unknown"

// Entry is one participant's admitted claim on a giveaway. Immutable once created.
type Entry struct {
	ID                string    `json:"id"`
	GiveawayID        string    `json:"giveaway_id"`
	ParticipantName   string    `json:"participant_name"`
	RedditName        string    `json:"reddit_name,omitempty"`
	RedditProfileLink string    `json:"reddit_profile_link,omitempty"`
	IPAddress         string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

type EntryCreate struct {
	GiveawayID        string
	ParticipantName   string
	RedditName        string
	RedditProfileLink string
	ClientAddress     string
}
