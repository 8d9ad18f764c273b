package blackjack

// Mode determines whether wagering is enabled
type Mode string

// game modes
const (
	// ModePractice deals hands with no wagering
	ModePractice Mode = "practice"
	// ModeClassic wagers against the default balances
	ModeClassic Mode = "classic"
	// ModeCustom wagers against caller-supplied balances
	ModeCustom Mode = "custom"
)

// Valid returns true if the mode is one of the known modes
func (m Mode) Valid() bool {
	switch m {
	case ModePractice, ModeClassic, ModeCustom:
		return true
	}

	return false
}

// Wagering returns true if bets are placed in this mode
func (m Mode) Wagering() bool {
	return m != ModePractice
}

// Options are options for creating a new blackjack game
type Options struct {
	StartingBalance int  // Default: 2000
	TargetBalance   int  // Default: 25000, reaching it wins the session
	Mode            Mode // practice, classic, or custom
}

// DefaultOptions returns the default options for a blackjack game
func DefaultOptions() Options {
	return Options{
		StartingBalance: 2000,
		TargetBalance:   25000,
		Mode:            ModeClassic,
	}
}
