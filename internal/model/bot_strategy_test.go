package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotStrategies(t *testing.T) {
	assert.True(t, IsValidBotStrategy(BotStrategyGreedy))
	assert.True(t, IsValidBotStrategy(BotStrategyRandom))
	assert.False(t, IsValidBotStrategy(""))
	assert.False(t, IsValidBotStrategy("clever"))
	assert.Equal(t, "Greedy", BotStrategyDisplayName(BotStrategyGreedy))
	assert.Equal(t, "clever", BotStrategyDisplayName("clever"))
}
