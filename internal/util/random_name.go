package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Golden", "Velvet", "Midnight", "Neon", "Royal", "High-Roller", "Silver",
	"Emerald", "Crimson", "Double-Down", "Hot", "Cold", "Smoky", "Electric", "Grand",
}

var nouns = []string{
	"Table", "Shoe", "Ace", "Dealer", "Streak", "Hand", "Draw", "Cut",
	"Felt", "Chip", "Wager", "Push", "Deuce", "Hole Card", "Seven", "Natural",
}

// GetRandomName returns a random display name for a game session
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
