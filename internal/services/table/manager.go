package table

import (
	"strconv"
	"strings"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/clock"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Manager owns the table state machine: enrollment into waiting tables,
// the flip to running when the last seat fills, and settlement via
// winner declaration.
type Manager struct {
	capacity int
	buyIn    int
	clock    clock.Clock
}

// NewManager creates a new table lifecycle manager
func NewManager(capacity, buyIn int, clk clock.Clock) *Manager {
	return &Manager{
		capacity: capacity,
		buyIn:    buyIn,
		clock:    clk,
	}
}

// FindOrCreateOpen returns the lowest-id waiting table with spare
// capacity, creating a fresh table from the aggregate's counter when
// none exists
func (m *Manager) FindOrCreateOpen(snap *model.Snapshot) *model.Table {
	for _, t := range snap.TablesInOrder() {
		if t.IsOpen() {
			return t
		}
	}

	now := m.clock.Now()
	t := &model.Table{
		ID:        snap.NextTableID,
		Status:    model.TableStatusWaiting,
		Capacity:  m.capacity,
		BuyIn:     m.buyIn,
		Players:   []model.PlayerID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	snap.NextTableID++
	snap.Tables[t.ID] = t
	return t
}

// Enroll seats the player at the table. Filling the last seat flips the
// table to running in the same mutation and reports OutcomeTableFilled
// so the caller can announce the start.
func (m *Manager) Enroll(snap *model.Snapshot, t *model.Table, player *model.Player) (model.EnrollmentOutcome, error) {
	if t.HasPlayer(player.ID) {
		return "", model.ErrDuplicateEnrollment
	}

	t.Players = append(t.Players, player.ID)
	player.JoinedTables++
	t.UpdatedAt = m.clock.Now()

	if len(t.Players) >= t.Capacity {
		t.Status = model.TableStatusRunning
		return model.OutcomeTableFilled, nil
	}
	return model.OutcomePlayerJoined, nil
}

// DeclareWinner settles a running table: the resolved winner gets the
// win, the table becomes finished. The returned player is the winner.
func (m *Manager) DeclareWinner(snap *model.Snapshot, tableID model.TableID, selector string) (*model.Table, *model.Player, error) {
	t := snap.Table(tableID)
	if t == nil {
		return nil, nil, model.ErrTableNotFound
	}
	if t.Status != model.TableStatusRunning {
		return nil, nil, model.ErrTableNotRunning
	}

	winner := resolveWinner(snap, t, selector)
	if winner == nil {
		return nil, nil, model.ErrWinnerNotInTable
	}

	winnerID := winner.ID
	t.WinnerID = &winnerID
	t.Status = model.TableStatusFinished
	t.UpdatedAt = m.clock.Now()
	winner.Wins++

	return t, winner, nil
}

// resolveWinner matches the selector against the table's players in
// join order. Usernames match case-insensitively with any leading "@"
// stripped; a numeric selector also matches a bare player id.
func resolveWinner(snap *model.Snapshot, t *model.Table, selector string) *model.Player {
	name := strings.ToLower(strings.TrimPrefix(selector, "@"))
	id, idErr := strconv.ParseInt(name, 10, 64)

	for _, pid := range t.Players {
		p := snap.Player(pid)
		if p == nil {
			continue
		}
		if p.Username != "" && strings.ToLower(p.Username) == name {
			return p
		}
		if idErr == nil && int64(pid) == id {
			return p
		}
	}
	return nil
}
