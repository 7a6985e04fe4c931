package ai

import (
	"regexp"

	"github.com/thatcatcamp/windpalette/internal/color"
)

// MaxColors caps how many colors a suggestion keeps.
const MaxColors = 5

var hexToken = regexp.MustCompile(`#[0-9A-Fa-f]+`)

// ExtractColors returns the distinct #RRGGBB tokens in text, lowercased,
// in order of appearance. Longer or shorter hex runs are ignored.
func ExtractColors(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range hexToken.FindAllString(text, -1) {
		hex, err := color.ParseHex(tok)
		if err != nil || seen[hex] {
			continue
		}
		seen[hex] = true
		out = append(out, hex)
		if len(out) == MaxColors {
			break
		}
	}
	return out
}
