package blackjack

import "errors"

// ErrInvalidMode is returned when a game is created with an unknown mode
var ErrInvalidMode = errors.New("invalid game mode")

// ErrNegativeBalance is returned when a game is created with a negative starting balance
var ErrNegativeBalance = errors.New("starting balance cannot be negative")
