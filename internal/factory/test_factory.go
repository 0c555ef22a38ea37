package factory

import (
	"time"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/config"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/mocks"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/memory"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with an in-memory
// backend, a pinned clock and default tournament constants plus an
// admin id of 999
func NewTestApp() *TestApp {
	backend := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	cfg := config.Default()
	cfg.AdminID = 999

	app := newWithDependencies(backend, mockClock, cfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
