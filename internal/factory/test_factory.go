package factory

import (
	"time"

	"github.com/mcoot/equatix/internal/dependencies/mocks"
	"github.com/mcoot/equatix/internal/services/bot"
	"github.com/mcoot/equatix/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random leaves the supply in construction order, so player 1 is
// dealt "=0000001" and player 2 "=1111122".
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(mockClock, mockRandom, bot.DefaultMaxTiles, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// Place puts each character of text on consecutive cells of a row
func (t *TestApp) Place(row, col int, text string) error {
	for i, ch := range text {
		if _, err := t.GameController.PlaceTile(row, col+i, ch); err != nil {
			return err
		}
	}
	return nil
}
