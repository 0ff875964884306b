package orca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseModelName(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		brand string
		want  string
	}{
		{"brand prefix and nozzle", "Creality Ender 3 0.4mm nozzle", "Creality", "Ender 3"},
		{"nozzle without unit", "Prusa MK4 0.6 nozzle", "Prusa", "MK4"},
		{"parenthetical nozzle", "Voron 2.4 (0.4mm nozzle)", "Voron", "2.4"},
		{"prefix case insensitive", "CREALITY Ender 5", "Creality", "Ender 5"},
		{"no brand prefix", "Ender 3", "Creality", "Ender 3"},
		{"brand substring not prefix", "Mega Creality Thing", "Creality", "Mega Creality Thing"},
		{"plain name untouched", "X1 Carbon", "Bambu Lab", "X1 Carbon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, baseModelName(tt.raw, tt.brand))
		})
	}
}

func TestIsBlacklisted(t *testing.T) {
	blacklist := []string{"hotend", "nozzle", "plate", "kit"}

	assert.True(t, isBlacklisted("E3D Hotend Upgrade", blacklist))
	assert.True(t, isBlacklisted("Textured PEI Plate", blacklist))
	assert.True(t, isBlacklisted("0.4mm NOZZLE", blacklist))
	assert.False(t, isBlacklisted("Ender 3", blacklist))
	assert.False(t, isBlacklisted("", blacklist))
}
