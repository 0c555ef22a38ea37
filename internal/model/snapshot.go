package model

import "sort"

// Snapshot is the single persisted aggregate: every mutation loads one,
// changes it in memory, and saves it back as a unit.
type Snapshot struct {
	Players     map[PlayerID]*Player   `json:"players"`
	Promoters   map[PlayerID]*Promoter `json:"promoters"`
	Tables      map[TableID]*Table     `json:"tables"`
	NextTableID TableID                `json:"next_table_id"`
}

// NewSnapshot returns an empty aggregate with the table counter at 1
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Players:     make(map[PlayerID]*Player),
		Promoters:   make(map[PlayerID]*Promoter),
		Tables:      make(map[TableID]*Table),
		NextTableID: 1,
	}
}

// Player returns the player with the given id, or nil if not recorded
func (s *Snapshot) Player(id PlayerID) *Player {
	return s.Players[id]
}

// Promoter returns the promoter with the given id, or nil if not recorded
func (s *Snapshot) Promoter(id PlayerID) *Promoter {
	return s.Promoters[id]
}

// Table returns the table with the given id, or nil if not recorded
func (s *Snapshot) Table(id TableID) *Table {
	return s.Tables[id]
}

// TablesInOrder returns all tables sorted by ascending id, giving scans
// a stable order independent of map iteration
func (s *Snapshot) TablesInOrder() []*Table {
	tables := make([]*Table, 0, len(s.Tables))
	for _, t := range s.Tables {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].ID < tables[j].ID })
	return tables
}

// PromotersInOrder returns all promoters sorted by ascending id
func (s *Snapshot) PromotersInOrder() []*Promoter {
	promoters := make([]*Promoter, 0, len(s.Promoters))
	for _, p := range s.Promoters {
		promoters = append(promoters, p)
	}
	sort.Slice(promoters, func(i, j int) bool { return promoters[i].ID < promoters[j].ID })
	return promoters
}
