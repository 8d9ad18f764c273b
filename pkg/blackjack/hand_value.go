package blackjack

import "blackjack-server/pkg/deck"

// Value computes the blackjack total for a hand.
// Every Ace starts at 11; while the total is over 21 and an Ace is still
// counted high, one Ace is converted from 11 to 1. soft is true if an Ace
// remains counted as 11 in the final total.
func Value(hand deck.Hand) (total int, soft bool) {
	aces := 0
	for _, card := range hand {
		total += card.BlackjackValue()
		if card.Rank == deck.Ace {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}

// Compare determines the round outcome from the two final totals.
// A player bust loses regardless of the dealer's total, even if the dealer
// also busted.
func Compare(playerTotal, dealerTotal int) (Outcome, string) {
	switch {
	case playerTotal > 21:
		return OutcomeBust, "Bust! Dealer wins."
	case dealerTotal > 21:
		return OutcomeWin, "Dealer busts! You win."
	case playerTotal == dealerTotal:
		return OutcomePush, "Push! It's a tie."
	case playerTotal > dealerTotal:
		return OutcomeWin, "You win!"
	default:
		return OutcomeLose, "Dealer wins."
	}
}
