package referral

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/mocks"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/identity"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/testutil"
)

type ResolverSuite struct {
	suite.Suite
	resolver *Resolver
	snap     *model.Snapshot
	player   *model.Player
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	registry := identity.NewRegistry(clk)
	s.resolver = NewResolver(registry, testutil.NopLogger())
	s.snap = model.NewSnapshot()
	s.player = &model.Player{ID: 1, Username: "alice", CreatedAt: clk.Now()}
	s.snap.Players[1] = s.player
}

func (s *ResolverSuite) TestParseToken() {
	tests := []struct {
		token string
		id    model.PlayerID
		ok    bool
	}{
		{"promo_42", 42, true},
		{"promo_1", 1, true},
		{"promo_", 0, false},
		{"promo_0", 0, false},
		{"promo_-5", 0, false},
		{"promo_abc", 0, false},
		{"promo_42x", 0, false},
		{"referral_42", 0, false},
		{"42", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := ParseToken(tt.token)
		s.Equal(tt.ok, ok, "token %q", tt.token)
		s.Equal(tt.id, id, "token %q", tt.token)
	}
}

func (s *ResolverSuite) TestApplyLinksAndCreatesShell() {
	s.resolver.Apply(s.snap, s.player, "promo_42")

	s.Require().NotNil(s.player.ReferredBy)
	s.Equal(model.PlayerID(42), *s.player.ReferredBy)

	promoter := s.snap.Promoter(42)
	s.Require().NotNil(promoter)
	s.Equal(1, promoter.ReferredPlayers)
	s.Equal("promo_42", promoter.PromoCode)
	s.False(promoter.Identified)
}

func (s *ResolverSuite) TestApplyUsesExistingPromoter() {
	s.snap.Promoters[42] = &model.Promoter{
		ID:              42,
		Username:        "carol",
		PromoCode:       "promo_42",
		ReferredPlayers: 3,
		Identified:      true,
	}

	s.resolver.Apply(s.snap, s.player, "promo_42")

	promoter := s.snap.Promoter(42)
	s.Equal(4, promoter.ReferredPlayers)
	s.True(promoter.Identified)
	s.Equal("carol", promoter.Username)
}

func (s *ResolverSuite) TestApplyEmptyTokenNoOp() {
	s.resolver.Apply(s.snap, s.player, "")

	s.Nil(s.player.ReferredBy)
	s.Empty(s.snap.Promoters)
}

func (s *ResolverSuite) TestApplyMalformedTokenNoOp() {
	s.resolver.Apply(s.snap, s.player, "promo_xyz")

	s.Nil(s.player.ReferredBy)
	s.Empty(s.snap.Promoters)
}

func (s *ResolverSuite) TestApplyKeepsFirstReferrer() {
	s.resolver.Apply(s.snap, s.player, "promo_42")
	s.resolver.Apply(s.snap, s.player, "promo_77")

	s.Equal(model.PlayerID(42), *s.player.ReferredBy)
	s.Nil(s.snap.Promoter(77))
	s.Equal(1, s.snap.Promoter(42).ReferredPlayers)
}

func (s *ResolverSuite) TestApplyIgnoresSelfReferral() {
	s.resolver.Apply(s.snap, s.player, "promo_1")

	s.Nil(s.player.ReferredBy)
	s.Nil(s.snap.Promoter(1))
}
