package payout

import (
	"log/slog"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Ledger accrues referral bonuses and projects promoter balances
type Ledger struct {
	logger *slog.Logger
}

// NewLedger creates a new payout ledger
func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Accrue adds amount to the promoter's pending payout. A missing
// promoter record is a silent no-op: referrals always create a shell,
// so this path should be unreachable, but a missing target must not
// fail the settlement it rides on.
func (l *Ledger) Accrue(snap *model.Snapshot, promoterID model.PlayerID, amount float64) bool {
	promoter := snap.Promoter(promoterID)
	if promoter == nil {
		l.logger.Warn("accrual target missing, skipping",
			slog.Int64("promoter_id", int64(promoterID)),
		)
		return false
	}

	promoter.PendingPayout += amount
	return true
}

// Balances returns every promoter's counters for reporting, sorted by
// id. Pure projection, no mutation.
func (l *Ledger) Balances(snap *model.Snapshot) []model.PromoterSummary {
	promoters := snap.PromotersInOrder()
	summaries := make([]model.PromoterSummary, 0, len(promoters))
	for _, p := range promoters {
		summaries = append(summaries, model.PromoterSummary{
			ID:              p.ID,
			Name:            p.Name(),
			ReferredPlayers: p.ReferredPlayers,
			PendingPayout:   p.PendingPayout,
			TotalPaid:       p.TotalPaid,
		})
	}
	return summaries
}
