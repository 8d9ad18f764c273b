package blackjack

import "blackjack-server/pkg/deck"

// HandView is a read-only projection of a hand.
// When HoleHidden is true only the dealer's up card is present and the total
// is withheld.
type HandView struct {
	Cards      []*deck.Card `json:"cards"`
	Total      int          `json:"total"`
	Soft       bool         `json:"soft"`
	HoleHidden bool         `json:"holeHidden,omitempty"`
}

// GameState is a full snapshot of the observable game state.
// This is safe to hand to a presentation layer: the dealer's hole card is
// masked while the player is still acting.
type GameState struct {
	State         string   `json:"state"`
	Mode          Mode     `json:"mode"`
	Balance       int      `json:"balance"`
	Wager         int      `json:"wager"`
	TargetBalance int      `json:"targetBalance"`
	Player        HandView `json:"player"`
	Dealer        HandView `json:"dealer"`
	Message       string   `json:"message,omitempty"`
	CardsInShoe   int      `json:"cardsInShoe"`
}

// State returns the current discrete game state
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Mode returns the game mode
func (g *Game) Mode() Mode {
	return g.options.Mode
}

// Balance returns the current balance
func (g *Game) Balance() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.balance
}

// Wager returns the current wager
func (g *Game) Wager() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.wager
}

// ResultMessage returns the message set when the last round was settled
func (g *Game) ResultMessage() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.resultMessage
}

// ShoeRemaining returns the number of cards left in the shoe. Diagnostics
// only; play never depends on it.
func (g *Game) ShoeRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.shoe.CardsLeft()
}

// PlayerHand returns a view of the player's hand
func (g *Game) PlayerHand() HandView {
	g.mu.Lock()
	defer g.mu.Unlock()

	return handView(g.playerHand)
}

// DealerHand returns a view of the dealer's hand. With hideHole set and at
// least two cards dealt, everything past the up card is suppressed.
func (g *Game) DealerHand(hideHole bool) HandView {
	g.mu.Lock()
	defer g.mu.Unlock()

	return dealerHandView(g.dealerHand, hideHole)
}

// GetState returns a snapshot of the game. The dealer's hand is masked while
// the game is in the playing state.
func (g *Game) GetState() *GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return &GameState{
		State:         g.state.String(),
		Mode:          g.options.Mode,
		Balance:       g.balance,
		Wager:         g.wager,
		TargetBalance: g.options.TargetBalance,
		Player:        handView(g.playerHand),
		Dealer:        dealerHandView(g.dealerHand, g.state == StatePlaying),
		Message:       g.resultMessage,
		CardsInShoe:   g.shoe.CardsLeft(),
	}
}

func handView(hand deck.Hand) HandView {
	total, soft := Value(hand)
	return HandView{
		Cards: hand.Clone(),
		Total: total,
		Soft:  soft,
	}
}

func dealerHandView(hand deck.Hand, hideHole bool) HandView {
	if hideHole && len(hand) >= 2 {
		return HandView{
			Cards:      deck.Hand{hand.FirstCard()},
			HoleHidden: true,
		}
	}

	return handView(hand)
}
