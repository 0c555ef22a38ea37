package identity

import (
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/clock"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Registry maps external principals to player and promoter records.
// All methods mutate the snapshot they are given; persistence is the
// caller's update cycle.
type Registry struct {
	clock clock.Clock
}

// NewRegistry creates a new identity registry
func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{clock: clk}
}

// EnsurePlayer returns the player record for the principal, creating it
// with zero counters on first contact. Username and display name are
// refreshed on every call; an existing ReferredBy is never overwritten.
func (r *Registry) EnsurePlayer(snap *model.Snapshot, principal model.Principal) *model.Player {
	player := snap.Player(principal.ID)
	if player == nil {
		player = &model.Player{
			ID:        principal.ID,
			CreatedAt: r.clock.Now(),
		}
		snap.Players[principal.ID] = player
	}

	if principal.Username != "" {
		player.Username = principal.Username
	}
	if principal.DisplayName != "" {
		player.DisplayName = principal.DisplayName
	}

	return player
}

// EnsurePromoter returns the promoter record for the principal,
// creating it on first request for promoter materials. When the record
// already exists as a lazy shell, the principal's identity is filled in
// without resetting any counters.
func (r *Registry) EnsurePromoter(snap *model.Snapshot, principal model.Principal) *model.Promoter {
	promoter := snap.Promoter(principal.ID)
	if promoter == nil {
		promoter = &model.Promoter{
			ID:        principal.ID,
			PromoCode: model.PromoCodeFor(principal.ID),
			CreatedAt: r.clock.Now(),
		}
		snap.Promoters[principal.ID] = promoter
	}

	if principal.Username != "" {
		promoter.Username = principal.Username
	}
	if principal.DisplayName != "" {
		promoter.DisplayName = principal.DisplayName
	}
	promoter.Identified = true

	return promoter
}

// PromoterShell returns the promoter record for the given id, creating
// an unidentified shell when a referral token arrives before the
// promoter has ever interacted directly.
func (r *Registry) PromoterShell(snap *model.Snapshot, id model.PlayerID) *model.Promoter {
	promoter := snap.Promoter(id)
	if promoter == nil {
		promoter = &model.Promoter{
			ID:        id,
			PromoCode: model.PromoCodeFor(id),
			CreatedAt: r.clock.Now(),
		}
		snap.Promoters[id] = promoter
	}
	return promoter
}
