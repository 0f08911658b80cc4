package model

import "github.com/samber/lo"

// Bot strategy constants
const (
	BotStrategyGreedy = "greedy"
	BotStrategyRandom = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy, BotStrategyRandom}
}

// IsValidBotStrategy returns true if strategy names a known bot strategy
func IsValidBotStrategy(strategy string) bool {
	return lo.Contains(ValidBotStrategies(), strategy)
}
