package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 2000, opts.StartingBalance)
	assert.Equal(t, 25000, opts.TargetBalance)
	assert.Equal(t, ModeClassic, opts.Mode)
}

func TestMode(t *testing.T) {
	a := assert.New(t)

	a.True(ModePractice.Valid())
	a.True(ModeClassic.Valid())
	a.True(ModeCustom.Valid())
	a.False(Mode("").Valid())
	a.False(Mode("tournament").Valid())

	a.False(ModePractice.Wagering())
	a.True(ModeClassic.Wagering())
	a.True(ModeCustom.Wagering())
}
