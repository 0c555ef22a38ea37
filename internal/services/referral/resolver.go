package referral

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/identity"
)

// TokenPrefix is the tag a referral token carries ahead of the
// promoter id
const TokenPrefix = "promo_"

// Resolver links new players to promoters at first contact
type Resolver struct {
	registry *identity.Registry
	logger   *slog.Logger
}

// NewResolver creates a new referral resolver
func NewResolver(registry *identity.Registry, logger *slog.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		logger:   logger,
	}
}

// ParseToken extracts the promoter id from a referral token.
// Returns false for anything that is not a well-formed token.
func ParseToken(token string) (model.PlayerID, bool) {
	raw, ok := strings.CutPrefix(token, TokenPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return model.PlayerID(id), true
}

// Apply records the referral carried by token against the player.
// The link is one-shot and one-way: an already-referred player keeps
// their original referrer, and self-referral is ignored. When the named
// promoter has never interacted, an unidentified shell is created so
// the referred-player count has somewhere to live.
func (r *Resolver) Apply(snap *model.Snapshot, player *model.Player, token string) {
	if token == "" {
		return
	}

	promoterID, ok := ParseToken(token)
	if !ok {
		r.logger.Warn("ignoring malformed referral token", slog.String("token", token))
		return
	}

	if player.ReferredBy != nil {
		return
	}
	if promoterID == player.ID {
		// no self-referral
		return
	}

	player.ReferredBy = &promoterID

	promoter := r.registry.PromoterShell(snap, promoterID)
	promoter.ReferredPlayers++

	r.logger.Info("referral recorded",
		slog.Int64("player_id", int64(player.ID)),
		slog.Int64("promoter_id", int64(promoterID)),
	)
}
