package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case EnrollResult:
		o.printEnrollResult(v)
	case JoinResult:
		o.printJoinResult(v)
	case PromoResult:
		o.printPromoResult(v)
	case StatusResult:
		o.printStatusResult(v)
	case TableList:
		o.printTableList(v)
	case WinnerResult:
		o.printWinnerResult(v)
	case BalanceList:
		o.printBalanceList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID           int64  `json:"id"`
	Username     string `json:"username,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	JoinedTables int    `json:"joined_tables"`
	Wins         int    `json:"wins"`
	ReferredBy   *int64 `json:"referred_by,omitempty"`
}

// Promoter response type
type Promoter struct {
	ID              int64   `json:"id"`
	PromoCode       string  `json:"promo_code"`
	ReferredPlayers int     `json:"referred_players"`
	PendingPayout   float64 `json:"pending_payout"`
	TotalPaid       float64 `json:"total_paid"`
}

// Terms response type
type Terms struct {
	TableCapacity int     `json:"table_capacity"`
	BuyIn         int     `json:"buy_in"`
	WinPrize      int     `json:"win_prize"`
	HouseCut      int     `json:"house_cut"`
	ReferralBonus float64 `json:"referral_bonus"`
	CashTag       string  `json:"cash_tag"`
}

// EnrollResult response type
type EnrollResult struct {
	Player   Player    `json:"player"`
	Promoter *Promoter `json:"promoter,omitempty"`
	Terms    Terms     `json:"terms"`
}

// JoinResult response type
type JoinResult struct {
	Outcome     string   `json:"outcome"`
	TableID     int64    `json:"table_id"`
	Seated      int      `json:"seated"`
	Capacity    int      `json:"capacity"`
	PlayerNames []string `json:"player_names,omitempty"`
}

// PromoResult response type
type PromoResult struct {
	Promoter      Promoter `json:"promoter"`
	ReferralToken string   `json:"referral_token"`
	CashTag       string   `json:"cash_tag"`
}

// StatusResult response type
type StatusResult struct {
	Player   Player    `json:"player"`
	Promoter *Promoter `json:"promoter,omitempty"`
}

// TableSummary response type
type TableSummary struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Seated   int    `json:"seated"`
	Capacity int    `json:"capacity"`
	WinnerID *int64 `json:"winner_id,omitempty"`
}

// TableList response type
type TableList struct {
	Tables []TableSummary `json:"tables"`
}

// WinnerResult response type
type WinnerResult struct {
	TableID     int64   `json:"table_id"`
	WinnerID    int64   `json:"winner_id"`
	WinnerName  string  `json:"winner_name"`
	WinnerWins  int     `json:"winner_wins"`
	BonusPaid   bool    `json:"bonus_paid"`
	BonusAmount float64 `json:"bonus_amount,omitempty"`
	PromoterID  *int64  `json:"promoter_id,omitempty"`
}

// BalanceList response type
type BalanceList struct {
	Promoters []PromoterBalance `json:"promoters"`
}

// PromoterBalance response type
type PromoterBalance struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ReferredPlayers int     `json:"referred_players"`
	PendingPayout   float64 `json:"pending_payout"`
	TotalPaid       float64 `json:"total_paid"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	name := p.DisplayName
	if name == "" {
		name = "@" + p.Username
	}
	fmt.Printf("Player: %s (%d)\n", name, p.ID)
	fmt.Printf("Tables joined: %d\n", p.JoinedTables)
	fmt.Printf("Wins: %d\n", p.Wins)
	if p.ReferredBy != nil {
		fmt.Printf("Referred by: %d\n", *p.ReferredBy)
	}
}

func (o *Output) printPromoter(p Promoter) {
	fmt.Printf("Promo code: %s\n", p.PromoCode)
	fmt.Printf("Referred players: %d\n", p.ReferredPlayers)
	fmt.Printf("Pending payout: $%.2f\n", p.PendingPayout)
	fmt.Printf("Total paid: $%.2f\n", p.TotalPaid)
}

func (o *Output) printEnrollResult(r EnrollResult) {
	o.printPlayer(r.Player)
	fmt.Printf("Buy-in: $%d (send to %s)\n", r.Terms.BuyIn, r.Terms.CashTag)
	fmt.Printf("Winner gets: $%d, house keeps: $%d\n", r.Terms.WinPrize, r.Terms.HouseCut)
}

func (o *Output) printJoinResult(r JoinResult) {
	fmt.Printf("Table #%d (%d/%d players)\n", r.TableID, r.Seated, r.Capacity)
	if r.Outcome == "table_filled" {
		fmt.Println("Table is FULL and now RUNNING!")
		for _, name := range r.PlayerNames {
			fmt.Printf("  %s\n", name)
		}
	}
}

func (o *Output) printPromoResult(r PromoResult) {
	o.printPromoter(r.Promoter)
	fmt.Printf("Referral token: %s\n", r.ReferralToken)
	fmt.Printf("Pay-in cash tag: %s\n", r.CashTag)
}

func (o *Output) printStatusResult(r StatusResult) {
	o.printPlayer(r.Player)
	if r.Promoter != nil {
		fmt.Println("Promoter stats:")
		o.printPromoter(*r.Promoter)
	}
}

func (o *Output) printTableList(l TableList) {
	if len(l.Tables) == 0 {
		fmt.Println("No tables yet.")
		return
	}
	for _, t := range l.Tables {
		fmt.Printf("Table #%d - %s - players: %d/%d\n", t.ID, t.Status, t.Seated, t.Capacity)
	}
}

func (o *Output) printWinnerResult(r WinnerResult) {
	fmt.Printf("Table #%d finished!\n", r.TableID)
	fmt.Printf("Winner: %s (wins: %d)\n", r.WinnerName, r.WinnerWins)
	if r.BonusPaid {
		fmt.Printf("Promoter bonus: $%.2f to %d\n", r.BonusAmount, *r.PromoterID)
	}
}

func (o *Output) printBalanceList(l BalanceList) {
	if len(l.Promoters) == 0 {
		fmt.Println("No promoters yet.")
		return
	}
	for _, p := range l.Promoters {
		fmt.Printf("%s: referred=%d, pending=$%.2f, paid=$%.2f\n",
			p.Name, p.ReferredPlayers, p.PendingPayout, p.TotalPaid)
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Status: %s\n", r.Status)
}
