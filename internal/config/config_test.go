package config

import (
	"testing"

	"blackjack-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_GAME_TARGET_BALANCE", "9000")
	defer clear2()

	a := assert.New(t)
	assert.NoError(t, Load())

	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal(500, cfg.Game.StartingBalance)
	a.Equal(9000, cfg.Game.TargetBalance)
	a.Equal("custom", cfg.Game.Mode)

	// ensure we aren't using a pointer
	cfg.Game.Mode = "bad"
	cfg = Instance()
	a.Equal("custom", cfg.Game.Mode)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("BJ_CONFIG_FILE", "no-such-file.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 2000, cfg.Game.StartingBalance)
	assert.Equal(t, 25000, cfg.Game.TargetBalance)
	assert.Equal(t, "classic", cfg.Game.Mode)
	assert.Equal(t, "", cfg.Log.Level)
}
