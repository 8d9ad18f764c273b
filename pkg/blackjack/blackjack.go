package blackjack

import (
	"fmt"
	"sync"

	"blackjack-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// State is the discrete game state
type State int

const (
	// StateBetting is when the player chooses a wager
	StateBetting State = iota
	// StateDealing is a transient state between a successful bet and the initial deal
	StateDealing
	// StatePlaying is when the player may hit or stand
	StatePlaying
	// StateResult is when a round has been settled
	StateResult
	// StateWon is when the balance reached the target balance
	StateWon
	// StateOutOfMoney is when the balance is gone
	StateOutOfMoney
)

func (s State) String() string {
	switch s {
	case StateBetting:
		return "betting"
	case StateDealing:
		return "dealing"
	case StatePlaying:
		return "playing"
	case StateResult:
		return "result"
	case StateWon:
		return "won"
	case StateOutOfMoney:
		return "out_of_money"
	default:
		return "unknown"
	}
}

// reshuffleThreshold is the low-water mark for the shoe. When a round reset
// finds fewer cards than this, the shoe is rebuilt to 52 and reshuffled so a
// round can never run the shoe dry mid-hand.
const reshuffleThreshold = 10

// dealerStandsAt is the dealer's fixed stopping total. The dealer also stands
// on a soft 17: only the total is checked, never the soft flag.
const dealerStandsAt = 17

// Game is a single-table blackjack game: one player against the house.
// All operations serialize behind an internal mutex so the game may be driven
// by concurrent callers such as an HTTP handler.
type Game struct {
	mu      sync.Mutex
	options Options

	shoe       *deck.Deck
	playerHand deck.Hand
	dealerHand deck.Hand

	balance       int
	wager         int
	state         State
	resultMessage string

	logger logrus.FieldLogger
}

// NewGame returns a new blackjack game in the betting state with a fresh,
// shuffled shoe
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if !opts.Mode.Valid() {
		return nil, ErrInvalidMode
	}

	if opts.StartingBalance < 0 {
		return nil, ErrNegativeBalance
	}

	if opts.Mode.Wagering() && opts.TargetBalance <= opts.StartingBalance {
		// a session like this is winnable on the first settled hand; keep the
		// behavior but flag the configuration
		logger.WithFields(logrus.Fields{
			"startingBalance": opts.StartingBalance,
			"targetBalance":   opts.TargetBalance,
		}).Warn("target balance does not exceed starting balance")
	}

	shoe := deck.New()
	shoe.Shuffle()

	return &Game{
		options: opts,
		shoe:    shoe,
		balance: opts.StartingBalance,
		state:   StateBetting,
		logger:  logger,
	}, nil
}

// PlaceBet validates and records the wager for the next hand, moving the game
// into the dealing state on success. In practice mode the amount is ignored
// and there is no wager. Failures are reported in the result, never as an
// error; the caller should re-prompt.
func (g *Game) PlaceBet(amount int) BetResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.options.Mode == ModePractice {
		g.wager = 0
		g.state = StateDealing
		return BetResult{OK: true, Code: BetOK, Message: "Practice mode: Dealing cards..."}
	}

	if g.balance <= 0 {
		return BetResult{Code: BetGameOver, Message: "Game over. Reset balance to play again."}
	}

	if amount <= 0 {
		return BetResult{Code: BetInvalidAmount, Message: "Bet must be greater than 0."}
	}

	if amount > g.balance {
		return BetResult{Code: BetInsufficientBalance, Message: fmt.Sprintf("Insufficient balance. You have %d.", g.balance)}
	}

	g.wager = amount
	g.state = StateDealing
	g.logger.WithField("wager", amount).Debug("bet placed")

	return BetResult{OK: true, Code: BetOK, Message: fmt.Sprintf("Bet placed: %d. Dealing cards...", amount)}
}

// DealInitialHands deals two cards each, alternating player and dealer, and
// settles naturals. A player natural pays 3:2, truncated toward zero. If
// neither side has 21, the game enters the playing state.
func (g *Game) DealInitialHands() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.playerHand.Clear()
	g.dealerHand.Clear()

	for i := 0; i < 2; i++ {
		g.playerHand.AddCard(g.draw())
		g.dealerHand.AddCard(g.draw())
	}

	playerTotal, _ := Value(g.playerHand)
	dealerTotal, _ := Value(g.dealerHand)

	switch {
	case playerTotal == 21 && dealerTotal != 21:
		g.state = StateResult
		g.resultMessage = "Natural Blackjack! Player wins!"
		g.balance += g.wager * 3 / 2
		g.logger.WithField("payout", g.wager*3/2).Info("player natural blackjack")
	case dealerTotal == 21 && playerTotal != 21:
		g.state = StateResult
		g.resultMessage = "Dealer has Blackjack! Dealer wins."
		g.balance -= g.wager
		g.logger.Info("dealer natural blackjack")
	case playerTotal == 21 && dealerTotal == 21:
		g.state = StateResult
		g.resultMessage = "Both have Blackjack! Push."
	default:
		g.state = StatePlaying
	}
}

// PlayerHit draws one card into the player's hand. Over 21 settles the round
// immediately as a loss. Outside the playing state nothing is mutated and an
// invalid outcome is returned.
func (g *Game) PlayerHit() ActionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return ActionResult{Outcome: OutcomeInvalid, Message: "Cannot hit now."}
	}

	g.playerHand.AddCard(g.draw())
	playerTotal, _ := Value(g.playerHand)

	if playerTotal > 21 {
		g.state = StateResult
		g.resultMessage = fmt.Sprintf("Player busts with %d. Dealer wins.", playerTotal)
		g.balance -= g.wager
		g.logger.WithField("total", playerTotal).Debug("player busts")
		return ActionResult{Outcome: OutcomeBust, Message: g.resultMessage}
	}

	return ActionResult{Outcome: OutcomeHit, Message: fmt.Sprintf("Hit! New total: %d", playerTotal)}
}

// PlayerStand plays out the dealer's hand and settles the round. The dealer
// draws until reaching 17 or better and stands on a soft 17. The session then
// moves to won if the balance reached the target, or out_of_money if the
// balance is gone; won is checked first.
func (g *Game) PlayerStand() ActionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return ActionResult{Outcome: OutcomeInvalid, Message: "Cannot stand now."}
	}

	for {
		dealerTotal, _ := Value(g.dealerHand)
		if dealerTotal >= dealerStandsAt {
			break
		}

		g.dealerHand.AddCard(g.draw())
	}

	playerTotal, _ := Value(g.playerHand)
	dealerTotal, _ := Value(g.dealerHand)
	outcome, message := Compare(playerTotal, dealerTotal)

	switch outcome {
	case OutcomeWin:
		g.balance += g.wager
	case OutcomeLose:
		g.balance -= g.wager
	}
	// push and bust leave the balance alone; a bust was settled in PlayerHit

	g.state = StateResult
	g.resultMessage = message

	// won is deliberately checked before out_of_money
	if g.balance >= g.options.TargetBalance {
		g.state = StateWon
		g.logger.WithField("balance", g.balance).Info("target balance reached")
	} else if g.balance <= 0 {
		g.state = StateOutOfMoney
		g.resultMessage += " You are out of money!"
		g.logger.Info("player out of money")
	}

	g.logger.WithFields(logrus.Fields{
		"outcome":     outcome,
		"playerTotal": playerTotal,
		"dealerTotal": dealerTotal,
		"balance":     g.balance,
	}).Debug("round settled")

	return ActionResult{Outcome: outcome, Message: message}
}

// ResetForNewHand clears the hands, wager, and message for the next round and
// returns to the betting state. The shoe is rebuilt and reshuffled if it
// dropped below the low-water mark.
func (g *Game) ResetForNewHand() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.clearRound()
	g.reshuffleIfLow()
}

// ResetBalanceOnBroke restores the balance to the starting balance and begins
// a fresh betting round. This is how a session leaves the out_of_money state.
func (g *Game) ResetBalanceOnBroke() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.clearRound()
	g.balance = g.options.StartingBalance
	g.reshuffleIfLow()
	g.logger.WithField("balance", g.balance).Info("balance reset")
}

// clearRound must be called with the lock held
func (g *Game) clearRound() {
	g.playerHand.Clear()
	g.dealerHand.Clear()
	g.wager = 0
	g.resultMessage = ""
	g.state = StateBetting
}

// reshuffleIfLow must be called with the lock held. The shoe is replaced
// wholesale, never patched in place.
func (g *Game) reshuffleIfLow() {
	if g.shoe.CardsLeft() < reshuffleThreshold {
		g.shoe = deck.New()
		g.shoe.Shuffle()
		g.logger.Debug("shoe rebuilt and reshuffled")
	}
}

// draw must be called with the lock held. An empty shoe is unreachable when
// the reshuffle threshold holds, so running dry is a programming fault.
func (g *Game) draw() *deck.Card {
	card, err := g.shoe.Draw()
	if err != nil {
		panic(fmt.Sprintf("draw from empty shoe: %v", err))
	}

	return card
}
