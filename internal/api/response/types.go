package response

import (
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/config"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID           int64  `json:"id"`
	Username     string `json:"username,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	JoinedTables int    `json:"joined_tables"`
	Wins         int    `json:"wins"`
	ReferredBy   *int64 `json:"referred_by,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	out := Player{
		ID:           int64(p.ID),
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		JoinedTables: p.JoinedTables,
		Wins:         p.Wins,
	}
	if p.ReferredBy != nil {
		id := int64(*p.ReferredBy)
		out.ReferredBy = &id
	}
	return out
}

// Promoter represents a promoter's stats in API responses
type Promoter struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username,omitempty"`
	DisplayName     string  `json:"display_name,omitempty"`
	PromoCode       string  `json:"promo_code"`
	ReferredPlayers int     `json:"referred_players"`
	PendingPayout   float64 `json:"pending_payout"`
	TotalPaid       float64 `json:"total_paid"`
}

// PromoterFromModel converts a model.Promoter to a response Promoter
func PromoterFromModel(p *model.Promoter) Promoter {
	return Promoter{
		ID:              int64(p.ID),
		Username:        p.Username,
		DisplayName:     p.DisplayName,
		PromoCode:       p.PromoCode,
		ReferredPlayers: p.ReferredPlayers,
		PendingPayout:   p.PendingPayout,
		TotalPaid:       p.TotalPaid,
	}
}

// Terms echoes the tournament constants players need to see
type Terms struct {
	TableCapacity int     `json:"table_capacity"`
	BuyIn         int     `json:"buy_in"`
	WinPrize      int     `json:"win_prize"`
	HouseCut      int     `json:"house_cut"`
	ReferralBonus float64 `json:"referral_bonus"`
	CashTag       string  `json:"cash_tag"`
}

// TermsFromConfig builds the Terms block from the tournament config
func TermsFromConfig(cfg config.Tournament) Terms {
	return Terms{
		TableCapacity: cfg.TableCapacity,
		BuyIn:         cfg.BuyIn,
		WinPrize:      cfg.WinPrize,
		HouseCut:      cfg.HouseCut,
		ReferralBonus: cfg.ReferralBonus,
		CashTag:       cfg.CashTag,
	}
}

// EnrollResponse is the response for POST /enroll
type EnrollResponse struct {
	Player   Player    `json:"player"`
	Promoter *Promoter `json:"promoter,omitempty"`
	Terms    Terms     `json:"terms"`
}

// JoinResponse is the response for POST /tables/join
type JoinResponse struct {
	Outcome     string   `json:"outcome"`
	TableID     int64    `json:"table_id"`
	Seated      int      `json:"seated"`
	Capacity    int      `json:"capacity"`
	PlayerNames []string `json:"player_names,omitempty"`
}

// JoinFromResult converts a model.EnrollmentResult
func JoinFromResult(r *model.EnrollmentResult) JoinResponse {
	return JoinResponse{
		Outcome:     string(r.Outcome),
		TableID:     int64(r.TableID),
		Seated:      r.Seated,
		Capacity:    r.Capacity,
		PlayerNames: r.PlayerNames,
	}
}

// PromoterLinkResponse is the response for GET /promoters/me
type PromoterLinkResponse struct {
	Promoter      Promoter `json:"promoter"`
	ReferralToken string   `json:"referral_token"`
	CashTag       string   `json:"cash_tag"`
}

// StatusResponse is the response for GET /players/me/status
type StatusResponse struct {
	Player   Player    `json:"player"`
	Promoter *Promoter `json:"promoter,omitempty"`
}

// TableSummary represents a table in the admin listing
type TableSummary struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Seated   int    `json:"seated"`
	Capacity int    `json:"capacity"`
	WinnerID *int64 `json:"winner_id,omitempty"`
}

// TableSummaryFromModel converts a model.TableSummary
func TableSummaryFromModel(t model.TableSummary) TableSummary {
	out := TableSummary{
		ID:       int64(t.ID),
		Status:   string(t.Status),
		Seated:   t.Seated,
		Capacity: t.Capacity,
	}
	if t.WinnerID != nil {
		id := int64(*t.WinnerID)
		out.WinnerID = &id
	}
	return out
}

// TableListResponse is the response for GET /tables
type TableListResponse struct {
	Tables []TableSummary `json:"tables"`
}

// WinnerResponse is the response for POST /tables/{id}/winner
type WinnerResponse struct {
	TableID     int64   `json:"table_id"`
	WinnerID    int64   `json:"winner_id"`
	WinnerName  string  `json:"winner_name"`
	WinnerWins  int     `json:"winner_wins"`
	BonusPaid   bool    `json:"bonus_paid"`
	BonusAmount float64 `json:"bonus_amount,omitempty"`
	PromoterID  *int64  `json:"promoter_id,omitempty"`
}

// WinnerFromResult converts a model.WinnerResult
func WinnerFromResult(r *model.WinnerResult) WinnerResponse {
	out := WinnerResponse{
		TableID:     int64(r.TableID),
		WinnerID:    int64(r.WinnerID),
		WinnerName:  r.WinnerName,
		WinnerWins:  r.WinnerWins,
		BonusPaid:   r.BonusPaid,
		BonusAmount: r.BonusAmount,
	}
	if r.PromoterID != nil {
		id := int64(*r.PromoterID)
		out.PromoterID = &id
	}
	return out
}

// PromoterBalance represents one row of the admin balance report
type PromoterBalance struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ReferredPlayers int     `json:"referred_players"`
	PendingPayout   float64 `json:"pending_payout"`
	TotalPaid       float64 `json:"total_paid"`
}

// BalanceListResponse is the response for GET /promoters/balances
type BalanceListResponse struct {
	Promoters []PromoterBalance `json:"promoters"`
}

// BalancesFromSummaries converts the ledger projection
func BalancesFromSummaries(summaries []model.PromoterSummary) BalanceListResponse {
	out := BalanceListResponse{Promoters: make([]PromoterBalance, 0, len(summaries))}
	for _, s := range summaries {
		out.Promoters = append(out.Promoters, PromoterBalance{
			ID:              int64(s.ID),
			Name:            s.Name,
			ReferredPlayers: s.ReferredPlayers,
			PendingPayout:   s.PendingPayout,
			TotalPaid:       s.TotalPaid,
		})
	}
	return out
}
