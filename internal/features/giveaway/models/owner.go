package models

import "time"

// OwnerSession is a capability issued after the creator secret was verified.
// It authorizes management of exactly one giveaway until ExpiresAt.
type OwnerSession struct {
	Token      string    `json:"token"`
	GiveawayID string    `json:"giveaway_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}
