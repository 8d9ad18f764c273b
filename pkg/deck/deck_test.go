package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *d.Cards[51])

	// no duplicate rank×suit pair in a fresh shoe
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		assert.False(t, seen[*card], "duplicate card: %s", card)
		seen[*card] = true
	}
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	before := d.HashCode()

	d.SetSeed(1)
	d.Shuffle()

	assert.Equal(t, 52, d.CardsLeft())
	assert.NotEqual(t, before, d.HashCode())

	// same seed, same order
	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()
	assert.Equal(t, d.HashCode(), d2.HashCode())

	// shuffling does not change membership
	for _, card := range d2.Cards {
		assert.True(t, Hand(d.Cards).HasCard(card))
	}
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	top := *d.Cards[0]
	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, top, *card)
	assert.Equal(t, 51, d.CardsLeft())

	for i := 0; i < 51; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err = d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEmptyShoe {
		t.Errorf("expected err to be ErrEmptyShoe, got %#v", err)
	}

	assert.Equal(t, 0, d.CardsLeft())
}

func TestDeck_GetSeed(t *testing.T) {
	d := New()
	assert.Equal(t, int64(-1), d.GetSeed())

	d.SetSeed(77)
	assert.Equal(t, int64(77), d.GetSeed())

	d2 := New()
	d2.Shuffle()
	assert.True(t, d2.GetSeed() >= 0)
}
