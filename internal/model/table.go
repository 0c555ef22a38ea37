package model

import "time"

// TableID is a sequential table identifier assigned from the aggregate's
// counter, starting at 1, never reused
type TableID int64

// TableStatus represents the lifecycle state of a table
type TableStatus string

const (
	TableStatusWaiting  TableStatus = "waiting"  // open for enrollment
	TableStatusRunning  TableStatus = "running"  // full, play in progress
	TableStatusFinished TableStatus = "finished" // winner declared, terminal
)

// Table represents one fixed-size tournament table.
// Status moves strictly forward: waiting -> running -> finished.
type Table struct {
	ID        TableID     `json:"id"`
	Status    TableStatus `json:"status"`
	Capacity  int         `json:"capacity"`
	BuyIn     int         `json:"buy_in"`
	Players   []PlayerID  `json:"players"` // join order, no duplicates
	WinnerID  *PlayerID   `json:"winner_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HasPlayer reports whether the player is seated at this table
func (t *Table) HasPlayer(id PlayerID) bool {
	for _, pid := range t.Players {
		if pid == id {
			return true
		}
	}
	return false
}

// IsOpen reports whether the table can accept another enrollment
func (t *Table) IsOpen() bool {
	return t.Status == TableStatusWaiting && len(t.Players) < t.Capacity
}

// SeatsRemaining returns the number of unfilled seats
func (t *Table) SeatsRemaining() int {
	return t.Capacity - len(t.Players)
}
