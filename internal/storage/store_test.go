package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/memory"
)

type StoreSuite struct {
	suite.Suite
	backend *memory.Backend
	store   *storage.Store
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.backend = memory.New()
	s.store = storage.NewStore(s.backend)
	s.ctx = context.Background()
}

func (s *StoreSuite) TestUpdatePersistsMutation() {
	err := s.store.Update(s.ctx, func(snap *model.Snapshot) error {
		snap.Players[1] = &model.Player{ID: 1, Username: "alice"}
		return nil
	})
	s.Require().NoError(err)

	loaded, err := s.backend.Load(s.ctx)
	s.Require().NoError(err)
	s.NotNil(loaded.Player(1))
}

func (s *StoreSuite) TestUpdateErrorDiscardsMutation() {
	sentinel := errors.New("boom")

	err := s.store.Update(s.ctx, func(snap *model.Snapshot) error {
		snap.Players[1] = &model.Player{ID: 1}
		return sentinel
	})
	s.ErrorIs(err, sentinel)

	loaded, err := s.backend.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Players)
}

func (s *StoreSuite) TestViewDoesNotPersist() {
	err := s.store.View(s.ctx, func(snap *model.Snapshot) error {
		snap.Players[1] = &model.Player{ID: 1}
		return nil
	})
	s.Require().NoError(err)

	loaded, err := s.backend.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Players)
}

func (s *StoreSuite) TestConcurrentUpdatesAllLand() {
	const workers = 20

	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		id := model.PlayerID(i + 1)
		go func() {
			done <- s.store.Update(s.ctx, func(snap *model.Snapshot) error {
				snap.Players[id] = &model.Player{ID: id}
				return nil
			})
		}()
	}
	for i := 0; i < workers; i++ {
		s.Require().NoError(<-done)
	}

	loaded, err := s.backend.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(loaded.Players, workers)
}
