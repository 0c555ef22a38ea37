package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/mocks"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

type ManagerSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	manager *Manager
	snap    *model.Snapshot
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.manager = NewManager(3, 5, s.clock)
	s.snap = model.NewSnapshot()
}

func (s *ManagerSuite) addPlayer(id int64, username string) *model.Player {
	player := &model.Player{
		ID:        model.PlayerID(id),
		Username:  username,
		CreatedAt: s.clock.Now(),
	}
	s.snap.Players[player.ID] = player
	return player
}

func (s *ManagerSuite) TestFindOrCreateOpenCreatesFirstTable() {
	t := s.manager.FindOrCreateOpen(s.snap)

	s.Equal(model.TableID(1), t.ID)
	s.Equal(model.TableStatusWaiting, t.Status)
	s.Equal(3, t.Capacity)
	s.Equal(5, t.BuyIn)
	s.Empty(t.Players)
	s.Equal(model.TableID(2), s.snap.NextTableID)
}

func (s *ManagerSuite) TestFindOrCreateOpenReusesWaitingTable() {
	first := s.manager.FindOrCreateOpen(s.snap)
	second := s.manager.FindOrCreateOpen(s.snap)

	s.Equal(first.ID, second.ID)
	s.Len(s.snap.Tables, 1)
}

func (s *ManagerSuite) TestFindOrCreateOpenSkipsRunningTable() {
	t1 := s.manager.FindOrCreateOpen(s.snap)
	for i := int64(1); i <= 3; i++ {
		p := s.addPlayer(i, "")
		_, err := s.manager.Enroll(s.snap, t1, p)
		s.Require().NoError(err)
	}
	s.Equal(model.TableStatusRunning, t1.Status)

	t2 := s.manager.FindOrCreateOpen(s.snap)
	s.Equal(model.TableID(2), t2.ID)
}

func (s *ManagerSuite) TestFindOrCreateOpenPicksLowestID() {
	t1 := s.manager.FindOrCreateOpen(s.snap)
	// fabricate a second waiting table with a higher id
	s.snap.Tables[2] = &model.Table{
		ID:       2,
		Status:   model.TableStatusWaiting,
		Capacity: 3,
		Players:  []model.PlayerID{},
	}
	s.snap.NextTableID = 3

	picked := s.manager.FindOrCreateOpen(s.snap)
	s.Equal(t1.ID, picked.ID)
}

func (s *ManagerSuite) TestEnrollSeatsAndCounts() {
	t := s.manager.FindOrCreateOpen(s.snap)
	p := s.addPlayer(1, "alice")
	s.clock.Advance(time.Minute)

	outcome, err := s.manager.Enroll(s.snap, t, p)
	s.Require().NoError(err)

	s.Equal(model.OutcomePlayerJoined, outcome)
	s.Equal([]model.PlayerID{1}, t.Players)
	s.Equal(1, p.JoinedTables)
	s.Equal(s.clock.Now(), t.UpdatedAt)
}

func (s *ManagerSuite) TestEnrollRejectsDuplicate() {
	t := s.manager.FindOrCreateOpen(s.snap)
	p := s.addPlayer(1, "alice")

	_, err := s.manager.Enroll(s.snap, t, p)
	s.Require().NoError(err)

	_, err = s.manager.Enroll(s.snap, t, p)
	s.ErrorIs(err, model.ErrDuplicateEnrollment)
	s.Len(t.Players, 1)
	s.Equal(1, p.JoinedTables)
}

func (s *ManagerSuite) TestEnrollLastSeatStartsTable() {
	t := s.manager.FindOrCreateOpen(s.snap)
	for i := int64(1); i <= 2; i++ {
		outcome, err := s.manager.Enroll(s.snap, t, s.addPlayer(i, ""))
		s.Require().NoError(err)
		s.Equal(model.OutcomePlayerJoined, outcome)
	}

	outcome, err := s.manager.Enroll(s.snap, t, s.addPlayer(3, ""))
	s.Require().NoError(err)

	s.Equal(model.OutcomeTableFilled, outcome)
	s.Equal(model.TableStatusRunning, t.Status)
	s.Len(t.Players, 3)
}

func (s *ManagerSuite) runningTable() *model.Table {
	t := s.manager.FindOrCreateOpen(s.snap)
	s.addPlayer(1, "alice")
	s.addPlayer(2, "Bob")
	s.addPlayer(3, "")
	for i := int64(1); i <= 3; i++ {
		_, err := s.manager.Enroll(s.snap, t, s.snap.Player(model.PlayerID(i)))
		s.Require().NoError(err)
	}
	return t
}

func (s *ManagerSuite) TestDeclareWinnerUnknownTable() {
	_, _, err := s.manager.DeclareWinner(s.snap, 9, "@alice")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *ManagerSuite) TestDeclareWinnerWaitingTable() {
	t := s.manager.FindOrCreateOpen(s.snap)
	p := s.addPlayer(1, "alice")
	_, err := s.manager.Enroll(s.snap, t, p)
	s.Require().NoError(err)

	_, _, err = s.manager.DeclareWinner(s.snap, t.ID, "@alice")
	s.ErrorIs(err, model.ErrTableNotRunning)
	s.Nil(t.WinnerID)
	s.Zero(p.Wins)
}

func (s *ManagerSuite) TestDeclareWinnerFinishedTable() {
	t := s.runningTable()
	_, _, err := s.manager.DeclareWinner(s.snap, t.ID, "@alice")
	s.Require().NoError(err)

	_, _, err = s.manager.DeclareWinner(s.snap, t.ID, "@bob")
	s.ErrorIs(err, model.ErrTableNotRunning)
	s.Equal(1, s.snap.Player(1).Wins)
	s.Zero(s.snap.Player(2).Wins)
}

func (s *ManagerSuite) TestDeclareWinnerByUsername() {
	t := s.runningTable()

	table, winner, err := s.manager.DeclareWinner(s.snap, t.ID, "@alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerID(1), winner.ID)
	s.Equal(1, winner.Wins)
	s.Equal(model.TableStatusFinished, table.Status)
	s.Require().NotNil(table.WinnerID)
	s.Equal(model.PlayerID(1), *table.WinnerID)
}

func (s *ManagerSuite) TestDeclareWinnerCaseInsensitiveNoAt() {
	t := s.runningTable()

	_, winner, err := s.manager.DeclareWinner(s.snap, t.ID, "BOB")
	s.Require().NoError(err)
	s.Equal(model.PlayerID(2), winner.ID)
}

func (s *ManagerSuite) TestDeclareWinnerByNumericID() {
	t := s.runningTable()

	_, winner, err := s.manager.DeclareWinner(s.snap, t.ID, "3")
	s.Require().NoError(err)
	s.Equal(model.PlayerID(3), winner.ID)
}

func (s *ManagerSuite) TestDeclareWinnerStranger() {
	t := s.runningTable()
	s.addPlayer(7, "carol")

	_, _, err := s.manager.DeclareWinner(s.snap, t.ID, "@carol")
	s.ErrorIs(err, model.ErrWinnerNotInTable)
	s.Equal(model.TableStatusRunning, t.Status)
}
