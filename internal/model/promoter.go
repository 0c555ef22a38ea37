package model

import (
	"fmt"
	"time"
)

// Promoter represents a referrer. A promoter shares the player id space
// (a player may also be a promoter) but the records are independent.
type Promoter struct {
	ID              PlayerID  `json:"id"`
	Username        string    `json:"username,omitempty"`
	DisplayName     string    `json:"display_name,omitempty"`
	PromoCode       string    `json:"promo_code"`
	ReferredPlayers int       `json:"referred_players"`
	PendingPayout   float64   `json:"pending_payout"`
	TotalPaid       float64   `json:"total_paid"`
	// Identified is false for shells created lazily by a referral token
	// before the promoter ever interacted directly.
	Identified bool      `json:"identified"`
	CreatedAt  time.Time `json:"created_at"`
}

// PromoCodeFor derives the stable promo code for a promoter id
func PromoCodeFor(id PlayerID) string {
	return fmt.Sprintf("promo_%d", id)
}

// Name returns the best available human-readable name for the promoter
func (p *Promoter) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Username != "" {
		return "@" + p.Username
	}
	return fmt.Sprintf("%d", p.ID)
}
