package factory

import (
	"time"

	"github.com/mcoot/lifegame/internal/dependencies/idgen"
	"github.com/mcoot/lifegame/internal/dependencies/mocks"
	"github.com/mcoot/lifegame/internal/services/auth"
	"github.com/mcoot/lifegame/internal/storage/memory"
	"github.com/mcoot/lifegame/internal/testutil"
)

// TestSessionSecret signs sessions issued by a TestApp
const TestSessionSecret = "test-session-secret"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	authCfg := auth.DefaultConfig()
	authCfg.Secret = TestSessionSecret

	app, err := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		idgen.NewSequential("player-"),
		mocks.NewPlainHasher(),
		authCfg,
		testutil.NopLogger(),
	)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}
