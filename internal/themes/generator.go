// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/thatcatcamp/windpalette/internal/color"
)

// ErrInvalidColorCount is returned when a theme asks for other than 1-3 colors.
var ErrInvalidColorCount = errors.New("color count must be 1, 2 or 3")

// MaxColors is the number of colors a theme can show.
const MaxColors = 3

// ThemeColors are the brand colors of a theme. Secondary and Accent are
// empty when the theme shows fewer colors.
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// List returns the non-empty colors in order.
func (t ThemeColors) List() []string {
	var out []string
	for _, c := range []string{t.Primary, t.Secondary, t.Accent} {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Rand is the randomness the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Generator composes random themes from preferences.
type Generator struct {
	rng Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand makes the generator reproducible. The source must not be shared
// between goroutines unless it is itself safe for concurrent use.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// NewGenerator creates a generator backed by the global math/rand/v2 source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeededGenerator returns a generator whose output is fixed by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))
}

var defaultGenerator = NewGenerator()

// GenerateRandomTheme composes a theme with the default generator.
func GenerateRandomTheme(colorCount int, prefs Preferences) (ThemeColors, error) {
	return defaultGenerator.RandomTheme(colorCount, prefs)
}

// Composition is a generated theme together with how it was made.
type Composition struct {
	Colors  ThemeColors   `json:"colors"`
	Harmony color.Harmony `json:"harmony"`
	Preset  string        `json:"preset,omitempty"`
	Base    string        `json:"base"`
}

// RandomTheme composes a theme of colorCount colors.
func (g *Generator) RandomTheme(colorCount int, prefs Preferences) (ThemeColors, error) {
	comp, err := g.Compose(colorCount, prefs)
	if err != nil {
		return ThemeColors{}, err
	}
	return comp.Colors, nil
}

// Compose samples a base color, nudges it by the preferences, expands it
// with a random harmony and lifts colors that sit too close in contrast to
// the first one.
func (g *Generator) Compose(colorCount int, prefs Preferences) (Composition, error) {
	if colorCount < 1 || colorCount > MaxColors {
		return Composition{}, fmt.Errorf("%w: got %d", ErrInvalidColorCount, colorCount)
	}
	if err := prefs.Validate(); err != nil {
		return Composition{}, err
	}

	base, preset := g.sampleBase(prefs.ColorFamily)
	base = adjustForPreferences(base, prefs)

	harmony := color.Harmonies[g.rng.IntN(len(color.Harmonies))]
	related, err := color.HarmonyHSL(base, harmony)
	if err != nil {
		return Composition{}, err
	}

	colors := make([]string, len(related))
	for i, c := range related {
		colors[i] = color.HSLToHex(c)
	}
	if err := enforceContrast(colors); err != nil {
		return Composition{}, err
	}

	return Composition{
		Colors:  truncate(colors, colorCount),
		Harmony: harmony,
		Preset:  preset,
		Base:    color.HSLToHex(base),
	}, nil
}

func (g *Generator) between(s span) float64 {
	return s.Min + g.rng.Float64()*(s.Max-s.Min)
}

func (g *Generator) sample(r hslRange) color.HSL {
	return color.HSL{
		H: math.Mod(g.between(r.H), 360),
		S: g.between(r.S),
		L: g.between(r.L),
	}
}

// sampleBase picks the starting color. With no family the hue is drawn
// around the golden-ratio offset, then a curated preset overrides it.
func (g *Generator) sampleBase(family ColorFamily) (color.HSL, string) {
	if family != FamilyAll {
		return g.sample(familyRanges[family]), ""
	}

	base := color.HSL{
		H: math.Mod(g.rng.Float64()+goldenRatioConjugate, 1) * 360,
		S: g.between(freeSaturation),
		L: g.between(freeLightness),
	}
	name := presetOrder[g.rng.IntN(len(presetOrder))]
	if r, ok := presetRanges[name]; ok {
		base = g.sample(r)
	}
	return base, name
}

var (
	naturalMix      = mustHSL(naturalMixTarget)
	vintageMix      = mustHSL(vintageMixTarget)
	professionalMix = mustHSL(professionalMixTarget)
)

func mustHSL(hex string) color.HSL {
	hsl, err := color.HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return hsl
}

// adjustForPreferences applies temperature, style, mood and contrast in
// that order. Each step nudges the current color.
func adjustForPreferences(c color.HSL, prefs Preferences) color.HSL {
	c = adjustTemperature(c, prefs.BaseColor)
	c = adjustStyle(c, prefs.Style)
	c = adjustMood(c, prefs.Mood)
	return adjustContrast(c, prefs.Contrast)
}

func adjustTemperature(c color.HSL, t Temperature) color.HSL {
	switch t {
	case Warm:
		return color.Saturate(color.Spin(c, 15), 10)
	case Cool:
		return color.Saturate(color.Spin(c, -15), 10)
	case Neutral:
		return color.Desaturate(c, 20)
	}
	return c
}

func adjustStyle(c color.HSL, s Style) color.HSL {
	switch s {
	case Natural:
		return color.Mix(color.Desaturate(c, 10), naturalMix, 10)
	case Modern:
		return color.Saturate(c, 10)
	case Vintage:
		return color.Mix(color.Desaturate(c, 15), vintageMix, 15)
	case Bold:
		return color.Lighten(color.Saturate(c, 20), 10)
	}
	return c
}

func adjustMood(c color.HSL, m Mood) color.HSL {
	switch m {
	case Calm:
		return color.Lighten(color.Desaturate(c, 10), 5)
	case Energetic:
		return color.Lighten(color.Saturate(c, 15), 10)
	case Professional:
		return color.Mix(color.Desaturate(c, 5), professionalMix, 10)
	case Playful:
		return color.Spin(color.Saturate(c, 20), 5)
	}
	return c
}

func adjustContrast(c color.HSL, k Contrast) color.HSL {
	switch k {
	case Subtle:
		return color.Desaturate(c, 10)
	case Strong:
		return color.Saturate(c, 15)
	}
	return c
}

// enforceContrast makes one pass over colors[1:]; a color still below
// MinContrast afterwards is kept as is.
func enforceContrast(colors []string) error {
	for i := 1; i < len(colors); i++ {
		ratio, err := color.ContrastRatio(colors[0], colors[i])
		if err != nil {
			return err
		}
		if ratio >= color.MinContrast {
			continue
		}
		hsl, err := color.HexToHSL(colors[i])
		if err != nil {
			return err
		}
		colors[i] = color.HSLToHex(color.Saturate(color.Lighten(hsl, 20), 10))
	}
	return nil
}

func truncate(colors []string, count int) ThemeColors {
	theme := ThemeColors{Primary: colors[0]}
	if count >= 2 && len(colors) > 1 {
		theme.Secondary = colors[1]
	}
	if count >= 3 && len(colors) > 2 {
		theme.Accent = colors[2]
	}
	return theme
}
