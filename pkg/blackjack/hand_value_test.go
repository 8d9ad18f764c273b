package blackjack

import (
	"testing"

	"blackjack-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func handFromString(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestValue(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		hand  string
		total int
		soft  bool
	}{
		{"14s,13h", 21, true},       // ace + king is a natural
		{"14s,14h", 12, true},       // one ace downgraded, one still high
		{"10s,7h", 17, false},       // hard 17
		{"14s,6h", 17, true},        // soft 17
		{"14s,6h,10d", 17, false},   // ace forced low
		{"14s,14h,14d,14c,10s", 14, false}, // four aces + ten, all downgraded
		{"2c,3d,4h", 9, false},
		{"13s,12h,2c", 24, false}, // busted, nothing to downgrade
		{"14s,14h,9c", 21, true},  // 11+1+9
	}

	for _, test := range tests {
		total, soft := Value(handFromString(test.hand))
		a.Equal(test.total, total, "total of %s", test.hand)
		a.Equal(test.soft, soft, "softness of %s", test.hand)
	}
}

func TestValue_GrowsByOneCard(t *testing.T) {
	// hits append one card at a time and the value must stay consistent
	hand := handFromString("14s,6h")

	total, soft := Value(hand)
	assert.Equal(t, 17, total)
	assert.True(t, soft)

	hand.AddCard(deck.CardFromString("10d"))
	total, soft = Value(hand)
	assert.Equal(t, 17, total)
	assert.False(t, soft)

	hand.AddCard(deck.CardFromString("5c"))
	total, soft = Value(hand)
	assert.Equal(t, 22, total)
	assert.False(t, soft)
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	// player bust loses unconditionally, even when the dealer busted too
	outcome, msg := Compare(22, 18)
	a.Equal(OutcomeBust, outcome)
	a.Equal("Bust! Dealer wins.", msg)

	outcome, _ = Compare(22, 25)
	a.Equal(OutcomeBust, outcome)

	// dealer bust is a win even though 25 > 20
	outcome, msg = Compare(20, 25)
	a.Equal(OutcomeWin, outcome)
	a.Equal("Dealer busts! You win.", msg)

	outcome, msg = Compare(18, 18)
	a.Equal(OutcomePush, outcome)
	a.Equal("Push! It's a tie.", msg)

	outcome, msg = Compare(19, 18)
	a.Equal(OutcomeWin, outcome)
	a.Equal("You win!", msg)

	outcome, msg = Compare(17, 19)
	a.Equal(OutcomeLose, outcome)
	a.Equal("Dealer wins.", msg)
}
