package tournament

import (
	"context"
	"log/slog"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/config"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/identity"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/payout"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/referral"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/table"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
)

// Controller exposes the inbound tournament operations. Each operation
// runs as exactly one load-mutate-save cycle against the store (or one
// read-only view) and returns a result derived from that snapshot.
type Controller struct {
	store    *storage.Store
	registry *identity.Registry
	resolver *referral.Resolver
	tables   *table.Manager
	ledger   *payout.Ledger
	cfg      config.Tournament
	logger   *slog.Logger
}

// NewController creates a new tournament controller
func NewController(
	store *storage.Store,
	registry *identity.Registry,
	resolver *referral.Resolver,
	tables *table.Manager,
	ledger *payout.Ledger,
	cfg config.Tournament,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:    store,
		registry: registry,
		resolver: resolver,
		tables:   tables,
		ledger:   ledger,
		cfg:      cfg,
		logger:   logger,
	}
}

// Config returns the tournament constants
func (c *Controller) Config() config.Tournament {
	return c.cfg
}

// IsAdmin is the authorization predicate for privileged operations.
// The core compares ids only; verifying the caller actually is that
// principal belongs to the transport layer.
func (c *Controller) IsAdmin(id model.PlayerID) bool {
	return c.cfg.AdminID != 0 && id == c.cfg.AdminID
}

// Enroll records a principal's first contact, applying a referral token
// if one was carried, and returns the player's view
func (c *Controller) Enroll(ctx context.Context, principal model.Principal, referralToken string) (*model.PlayerView, error) {
	var view model.PlayerView

	err := c.store.Update(ctx, func(snap *model.Snapshot) error {
		player := c.registry.EnsurePlayer(snap, principal)
		c.resolver.Apply(snap, player, referralToken)

		view.Player = *player
		if promoter := snap.Promoter(principal.ID); promoter != nil {
			p := *promoter
			view.Promoter = &p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Join seats the principal at the first open table, creating one when
// every table is full or settled
func (c *Controller) Join(ctx context.Context, principal model.Principal) (*model.EnrollmentResult, error) {
	var result model.EnrollmentResult

	err := c.store.Update(ctx, func(snap *model.Snapshot) error {
		player := c.registry.EnsurePlayer(snap, principal)
		t := c.tables.FindOrCreateOpen(snap)

		outcome, err := c.tables.Enroll(snap, t, player)
		if err != nil {
			return err
		}

		result = model.EnrollmentResult{
			Outcome:  outcome,
			TableID:  t.ID,
			Seated:   len(t.Players),
			Capacity: t.Capacity,
		}
		if outcome == model.OutcomeTableFilled {
			for _, pid := range t.Players {
				if p := snap.Player(pid); p != nil {
					result.PlayerNames = append(result.PlayerNames, p.Name())
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("player joined table",
		slog.Int64("player_id", int64(principal.ID)),
		slog.Int64("table_id", int64(result.TableID)),
		slog.String("outcome", string(result.Outcome)),
	)
	return &result, nil
}

// PromoterLink returns the principal's promoter materials, creating or
// identifying the promoter record as needed
func (c *Controller) PromoterLink(ctx context.Context, principal model.Principal) (*model.PromoterView, error) {
	var view model.PromoterView

	err := c.store.Update(ctx, func(snap *model.Snapshot) error {
		promoter := c.registry.EnsurePromoter(snap, principal)
		view.Promoter = *promoter
		view.ReferralToken = promoter.PromoCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Status returns the principal's player stats plus promoter stats when
// the caller is also a promoter
func (c *Controller) Status(ctx context.Context, principal model.Principal) (*model.StatusView, error) {
	var view model.StatusView

	err := c.store.Update(ctx, func(snap *model.Snapshot) error {
		player := c.registry.EnsurePlayer(snap, principal)
		view.Player = *player
		if promoter := snap.Promoter(principal.ID); promoter != nil {
			p := *promoter
			view.Promoter = &p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListTables returns a summary of every table. Privileged.
func (c *Controller) ListTables(ctx context.Context) ([]model.TableSummary, error) {
	var summaries []model.TableSummary

	err := c.store.View(ctx, func(snap *model.Snapshot) error {
		for _, t := range snap.TablesInOrder() {
			summaries = append(summaries, model.TableSummary{
				ID:       t.ID,
				Status:   t.Status,
				Seated:   len(t.Players),
				Capacity: t.Capacity,
				WinnerID: t.WinnerID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeclareWinner settles a running table and, when the winner was
// referred, accrues the referral bonus to the referrer in the same
// cycle. Privileged.
func (c *Controller) DeclareWinner(ctx context.Context, tableID model.TableID, selector string) (*model.WinnerResult, error) {
	var result model.WinnerResult

	err := c.store.Update(ctx, func(snap *model.Snapshot) error {
		t, winner, err := c.tables.DeclareWinner(snap, tableID, selector)
		if err != nil {
			return err
		}

		result = model.WinnerResult{
			TableID:    t.ID,
			WinnerID:   winner.ID,
			WinnerName: winner.Name(),
			WinnerWins: winner.Wins,
		}

		if winner.ReferredBy != nil {
			if c.ledger.Accrue(snap, *winner.ReferredBy, c.cfg.ReferralBonus) {
				promoterID := *winner.ReferredBy
				result.BonusPaid = true
				result.BonusAmount = c.cfg.ReferralBonus
				result.PromoterID = &promoterID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("table settled",
		slog.Int64("table_id", int64(result.TableID)),
		slog.Int64("winner_id", int64(result.WinnerID)),
		slog.Bool("bonus_paid", result.BonusPaid),
	)
	return &result, nil
}

// PromoterBalances returns every promoter's counters. Privileged.
func (c *Controller) PromoterBalances(ctx context.Context) ([]model.PromoterSummary, error) {
	var summaries []model.PromoterSummary

	err := c.store.View(ctx, func(snap *model.Snapshot) error {
		summaries = c.ledger.Balances(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
