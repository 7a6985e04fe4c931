// SPDX-License-Identifier: MIT
package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHarmonies(t *testing.T) {
	tests := []struct {
		harmony Harmony
		want    []string
	}{
		{Triadic, []string{"#ff0000", "#00ff00", "#0000ff"}},
		{Complementary, []string{"#ff0000", "#00ffff", "#808080"}},
		{Analogous, []string{"#ff0000", "#ff8000", "#ff0080"}},
		{SplitComplementary, []string{"#ff0000", "#00ff80", "#0080ff"}},
	}
	for _, tt := range tests {
		got, err := GenerateHarmonies("#FF0000", tt.harmony)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "harmony %s", tt.harmony)
	}
}

func TestMonochromatic(t *testing.T) {
	got, err := GenerateHarmonies("#808080", Monochromatic)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "#808080", got[0])

	assert.Equal(t, "#bbabab", got[1])
	assert.Equal(t, "#7b5252", got[2])

	// gray is S 0, L 128/255
	base, err := HexToHSL("#808080")
	require.NoError(t, err)
	hsl, err := HarmonyHSL(base, Monochromatic)
	require.NoError(t, err)
	require.Len(t, hsl, 3)
	assert.Equal(t, base, hsl[0])
	assert.InDelta(t, 0, hsl[1].H, 1e-9)
	assert.InDelta(t, 10, hsl[1].S, 1e-9, "saturated by 10")
	assert.InDelta(t, base.L+20, hsl[1].L, 1e-9, "lightened by 20")
	assert.InDelta(t, 20, hsl[2].S, 1e-9, "saturated by 20")
	assert.InDelta(t, base.L-10, hsl[2].L, 1e-9, "darkened by 10")

	// the nudges clamp at the ends of the range
	hsl, err = HarmonyHSL(HSL{H: 210, S: 95, L: 90}, Monochromatic)
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 210, S: 100, L: 100}, hsl[1])
	assert.Equal(t, HSL{H: 210, S: 100, L: 80}, hsl[2])
}

func TestEveryHarmonyReturnsThreeColors(t *testing.T) {
	for _, h := range Harmonies {
		got, err := GenerateHarmonies("#0ea5e9", h)
		require.NoError(t, err)
		assert.Len(t, got, 3, "harmony %s", h)
	}
}

func TestHarmonyErrors(t *testing.T) {
	_, err := GenerateHarmonies("#0ea5e9", Harmony("tetradic"))
	assert.ErrorIs(t, err, ErrInvalidHarmony)

	_, err = ParseHarmony("square")
	assert.ErrorIs(t, err, ErrInvalidHarmony)

	h, err := ParseHarmony("splitComplementary")
	require.NoError(t, err)
	assert.Equal(t, SplitComplementary, h)
}

func TestHSLNudges(t *testing.T) {
	c := HSL{H: 350, S: 95, L: 5}
	assert.Equal(t, 20.0, Spin(c, 30).H)
	assert.Equal(t, 100.0, Saturate(c, 10).S)
	assert.Equal(t, 85.0, Desaturate(c, 10).S)
	assert.Equal(t, 0.0, Darken(c, 10).L)
	assert.Equal(t, 25.0, Lighten(c, 20).L)
}

func TestMix(t *testing.T) {
	black := HSL{0, 0, 0}
	white := HSL{0, 0, 100}
	assert.Equal(t, "#808080", HSLToHex(Mix(black, white, 50)))
	assert.Equal(t, "#000000", HSLToHex(Mix(black, white, 0)))
	assert.Equal(t, "#ffffff", HSLToHex(Mix(black, white, 100)))
}
