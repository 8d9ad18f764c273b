package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var startingBalance = flag.Int("balance", 2000, "starting balance")
var targetBalance = flag.Int("target", 25000, "target balance to win the session")
var mode = flag.String("mode", "classic", "game mode: practice, classic, or custom")

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logrus.Fatal("blackjack must be run from a terminal")
	}

	logrus.SetLevel(logrus.WarnLevel)

	game, err := blackjack.NewGame(logrus.StandardLogger(), blackjack.Options{
		StartingBalance: *startingBalance,
		TargetBalance:   *targetBalance,
		Mode:            blackjack.Mode(*mode),
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		switch game.State() {
		case blackjack.StateBetting:
			if !runBetting(game, scanner) {
				return
			}
		case blackjack.StatePlaying:
			if !runPlaying(game, scanner) {
				return
			}
		case blackjack.StateResult:
			fmt.Printf("\n%s Balance: %d\n", game.ResultMessage(), game.Balance())
			if !promptYesNo(scanner, "Play another hand?") {
				return
			}
			game.ResetForNewHand()
		case blackjack.StateWon:
			fmt.Printf("\n%s\nYou reached %d and beat the house!\n", game.ResultMessage(), game.Balance())
			return
		case blackjack.StateOutOfMoney:
			fmt.Printf("\n%s\n", game.ResultMessage())
			if !promptYesNo(scanner, "Get more money?") {
				return
			}
			game.ResetBalanceOnBroke()
		default:
			logrus.WithField("state", game.State()).Fatal("unexpected state")
		}
	}
}

func runBetting(game *blackjack.Game, scanner *bufio.Scanner) bool {
	for {
		var amount int
		if game.Mode().Wagering() {
			fmt.Printf("\nBalance: %d. Enter your bet: ", game.Balance())
			line, ok := readLine(scanner)
			if !ok {
				return false
			}

			val, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				fmt.Println("Bet must be a number.")
				continue
			}
			amount = val
		}

		res := game.PlaceBet(amount)
		fmt.Println(res.Message)
		if res.OK {
			game.DealInitialHands()
			return true
		}

		if res.Code == blackjack.BetGameOver {
			if !promptYesNo(scanner, "Get more money?") {
				return false
			}

			game.ResetBalanceOnBroke()
		}
	}
}

func runPlaying(game *blackjack.Game, scanner *bufio.Scanner) bool {
	for game.State() == blackjack.StatePlaying {
		printHands(game, true)

		fmt.Print("(h)it or (s)tand? ")
		line, ok := readLine(scanner)
		if !ok {
			return false
		}

		var res blackjack.ActionResult
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "h", "hit":
			res = game.PlayerHit()
		case "s", "stand":
			res = game.PlayerStand()
		default:
			fmt.Println("Enter h or s.")
			continue
		}

		fmt.Println(res.Message)
	}

	printHands(game, false)
	return true
}

func printHands(game *blackjack.Game, hideHole bool) {
	fmt.Printf("\nDealer: %s\n", formatHand(game.DealerHand(hideHole)))
	fmt.Printf("Player: %s\n", formatHand(game.PlayerHand()))
}

func formatHand(view blackjack.HandView) string {
	cards := make([]string, len(view.Cards))
	for i, card := range view.Cards {
		cards[i] = card.String()
	}

	if view.HoleHidden {
		cards = append(cards, "[hidden]")
		return strings.Join(cards, ", ")
	}

	soft := ""
	if view.Soft {
		soft = " (soft)"
	}

	return fmt.Sprintf("%s = %d%s", strings.Join(cards, ", "), view.Total, soft)
}

func promptYesNo(scanner *bufio.Scanner, prompt string) bool {
	for {
		fmt.Printf("%s (y/n) ", prompt)
		line, ok := readLine(scanner)
		if !ok {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}

	return scanner.Text(), true
}
