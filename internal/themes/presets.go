// SPDX-License-Identifier: MIT
package themes

// span is an inclusive numeric range sampled uniformly.
type span struct{ Min, Max float64 }

// hslRange bounds a sampled color.
type hslRange struct {
	H, S, L span
}

// goldenRatioConjugate spreads successive random hues around the wheel.
const goldenRatioConjugate = 0.618033988749895

var (
	freeSaturation = span{65, 85}
	freeLightness  = span{45, 60}
)

// familyRanges bound the base color when a color family is chosen. Red
// straddles 0 degrees, so its hue band runs past 360 and is wrapped later.
var familyRanges = map[ColorFamily]hslRange{
	FamilyRed:     {H: span{350, 370}, S: span{70, 90}, L: freeLightness},
	FamilyOrange:  {H: span{20, 40}, S: span{75, 95}, L: freeLightness},
	FamilyYellow:  {H: span{45, 60}, S: span{80, 95}, L: freeLightness},
	FamilyGreen:   {H: span{90, 150}, S: span{50, 75}, L: freeLightness},
	FamilyBlue:    {H: span{200, 240}, S: span{60, 85}, L: freeLightness},
	FamilyPurple:  {H: span{260, 300}, S: span{50, 75}, L: freeLightness},
	FamilyNeutral: {H: span{0, 360}, S: span{5, 15}, L: freeLightness},
}

// Curated presets layered over free sampling when no family is chosen.
var presetOrder = []string{"nature", "ocean", "sunset", "forest"}

var presetRanges = map[string]hslRange{
	"nature": {H: span{60, 150}, S: span{30, 60}, L: span{35, 55}},
	"ocean":  {H: span{180, 240}, S: span{50, 80}, L: span{35, 60}},
	"sunset": {H: span{0, 45}, S: span{70, 90}, L: span{50, 65}},
	"forest": {H: span{90, 160}, S: span{35, 65}, L: span{20, 40}},
}

// Mix targets used by the style and mood adjustments.
const (
	naturalMixTarget      = "#a8996c"
	vintageMixTarget      = "#d4c5b2"
	professionalMixTarget = "#4a4a4a"
)
