// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidPreference is returned when a preference is outside its set.
var ErrInvalidPreference = errors.New("invalid preference")

type Temperature string

const (
	Warm    Temperature = "warm"
	Cool    Temperature = "cool"
	Neutral Temperature = "neutral"
)

type Style string

const (
	Natural Style = "natural"
	Modern  Style = "modern"
	Vintage Style = "vintage"
	Bold    Style = "bold"
)

type Mood string

const (
	Calm         Mood = "calm"
	Energetic    Mood = "energetic"
	Professional Mood = "professional"
	Playful      Mood = "playful"
)

type Contrast string

const (
	Subtle   Contrast = "subtle"
	Balanced Contrast = "balanced"
	Strong   Contrast = "strong"
)

type ColorFamily string

const (
	FamilyAll     ColorFamily = "all"
	FamilyRed     ColorFamily = "red"
	FamilyOrange  ColorFamily = "orange"
	FamilyYellow  ColorFamily = "yellow"
	FamilyGreen   ColorFamily = "green"
	FamilyBlue    ColorFamily = "blue"
	FamilyPurple  ColorFamily = "purple"
	FamilyNeutral ColorFamily = "neutral"
)

var (
	temperatures = []Temperature{Warm, Cool, Neutral}
	styles       = []Style{Natural, Modern, Vintage, Bold}
	moods        = []Mood{Calm, Energetic, Professional, Playful}
	contrasts    = []Contrast{Subtle, Balanced, Strong}
	families     = []ColorFamily{FamilyAll, FamilyRed, FamilyOrange, FamilyYellow, FamilyGreen, FamilyBlue, FamilyPurple, FamilyNeutral}
)

// Preferences are the qualitative knobs of the random theme generator.
type Preferences struct {
	BaseColor   Temperature `json:"baseColor"`
	Style       Style       `json:"style"`
	Mood        Mood        `json:"mood"`
	Contrast    Contrast    `json:"contrast"`
	ColorFamily ColorFamily `json:"colorFamily"`
}

// DefaultPreferences is what the UI starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		BaseColor:   Neutral,
		Style:       Modern,
		Mood:        Professional,
		Contrast:    Balanced,
		ColorFamily: FamilyAll,
	}
}

// WithDefaults fills empty fields from DefaultPreferences.
func (p Preferences) WithDefaults() Preferences {
	d := DefaultPreferences()
	if p.BaseColor == "" {
		p.BaseColor = d.BaseColor
	}
	if p.Style == "" {
		p.Style = d.Style
	}
	if p.Mood == "" {
		p.Mood = d.Mood
	}
	if p.Contrast == "" {
		p.Contrast = d.Contrast
	}
	if p.ColorFamily == "" {
		p.ColorFamily = d.ColorFamily
	}
	return p
}

// Validate rejects values outside the closed sets.
func (p Preferences) Validate() error {
	if !slices.Contains(temperatures, p.BaseColor) {
		return invalidPreference("baseColor", string(p.BaseColor))
	}
	if !slices.Contains(styles, p.Style) {
		return invalidPreference("style", string(p.Style))
	}
	if !slices.Contains(moods, p.Mood) {
		return invalidPreference("mood", string(p.Mood))
	}
	if !slices.Contains(contrasts, p.Contrast) {
		return invalidPreference("contrast", string(p.Contrast))
	}
	if !slices.Contains(families, p.ColorFamily) {
		return invalidPreference("colorFamily", string(p.ColorFamily))
	}
	return nil
}

func invalidPreference(field, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidPreference, field, value)
}
