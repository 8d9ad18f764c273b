package blackjack

// Outcome is the machine-checkable result of a player action
type Outcome string

// outcome constants
const (
	// OutcomeInvalid means the action isn't allowed in the current state.
	// Nothing was mutated.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeHit means the player drew a card and is still in the hand
	OutcomeHit Outcome = "hit"
	// OutcomeBust means the player went over 21 and lost the wager
	OutcomeBust Outcome = "bust"
	// OutcomeWin means the player beat the dealer
	OutcomeWin Outcome = "win"
	// OutcomeLose means the dealer beat the player
	OutcomeLose Outcome = "lose"
	// OutcomePush means the totals tied and the wager is returned
	OutcomePush Outcome = "push"
)

// ActionResult is returned from PlayerHit and PlayerStand
type ActionResult struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// BetCode classifies the result of PlaceBet
type BetCode string

// bet codes
const (
	// BetOK means the wager was accepted and cards will be dealt
	BetOK BetCode = "ok"
	// BetGameOver means the balance is gone; reset it before betting again
	BetGameOver BetCode = "game_over"
	// BetInvalidAmount means the wager was zero or negative
	BetInvalidAmount BetCode = "invalid_amount"
	// BetInsufficientBalance means the wager exceeds the balance
	BetInsufficientBalance BetCode = "insufficient_balance"
)

// BetResult is returned from PlaceBet. It never escalates to an error;
// the caller is expected to re-prompt on failure.
type BetResult struct {
	OK      bool    `json:"ok"`
	Code    BetCode `json:"code"`
	Message string  `json:"message"`
}
