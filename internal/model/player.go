package model

import "time"

// PlayerID uniquely identifies a player across the system.
// IDs are assigned externally (by the chat platform) and are stable.
type PlayerID int64

// Principal is an external actor's identity as handed to the core
// by the transport layer. Username and DisplayName may be empty.
type Principal struct {
	ID          PlayerID
	Username    string
	DisplayName string
}

// Player represents a tournament participant
type Player struct {
	ID           PlayerID  `json:"id"`
	Username     string    `json:"username,omitempty"`
	DisplayName  string    `json:"display_name,omitempty"`
	JoinedTables int       `json:"joined_tables"`
	Wins         int       `json:"wins"`
	ReferredBy   *PlayerID `json:"referred_by,omitempty"` // write-once, never overwritten
	CreatedAt    time.Time `json:"created_at"`
}

// Name returns the best available human-readable name for the player
func (p *Player) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Username != "" {
		return "@" + p.Username
	}
	return "Player"
}
