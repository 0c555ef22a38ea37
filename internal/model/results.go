package model

// EnrollmentOutcome distinguishes an ordinary seat from the one that
// filled the table, so callers know whether to announce table start
type EnrollmentOutcome string

const (
	OutcomePlayerJoined EnrollmentOutcome = "player_joined"
	OutcomeTableFilled  EnrollmentOutcome = "table_filled"
)

// EnrollmentResult is the outcome of a successful table join
type EnrollmentResult struct {
	Outcome  EnrollmentOutcome
	TableID  TableID
	Seated   int
	Capacity int
	// PlayerNames holds the names of everyone at the table, in join
	// order. Populated only when the table just filled.
	PlayerNames []string
}

// WinnerResult is the outcome of a successful winner declaration
type WinnerResult struct {
	TableID     TableID
	WinnerID    PlayerID
	WinnerName  string
	WinnerWins  int
	BonusPaid   bool
	BonusAmount float64
	PromoterID  *PlayerID
}

// PlayerView is the player-facing projection returned on enrollment
type PlayerView struct {
	Player   Player
	Promoter *Promoter // set when the player is also a promoter
}

// PromoterView is the projection returned with promoter materials
type PromoterView struct {
	Promoter Promoter
	// ReferralToken is the start parameter a referred player presents
	// at first contact.
	ReferralToken string
}

// StatusView combines a player's stats with their promoter stats, if any
type StatusView struct {
	Player   Player
	Promoter *Promoter
}

// TableSummary is the reporting projection of a table
type TableSummary struct {
	ID       TableID
	Status   TableStatus
	Seated   int
	Capacity int
	WinnerID *PlayerID
}

// PromoterSummary is the reporting projection of a promoter's balances
type PromoterSummary struct {
	ID              PlayerID
	Name            string
	ReferredPlayers int
	PendingPayout   float64
	TotalPaid       float64
}
