// SPDX-License-Identifier: MIT
package themes

// Palette is a named starter theme offered before anything is generated.
type Palette struct {
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}

var paletteOrder = []string{
	"sky", "indigo", "rose", "emerald", "amber", "violet",
	"teal", "slate", "sunset", "ocean", "forest", "mono",
}

var palettes = map[string]ThemeColors{
	"sky":     {Primary: "#0ea5e9", Secondary: "#6366f1", Accent: "#f59e0b"},
	"indigo":  {Primary: "#4f46e5", Secondary: "#f97316", Accent: "#14b8a6"},
	"rose":    {Primary: "#e11d48", Secondary: "#64748b", Accent: "#f59e0b"},
	"emerald": {Primary: "#059669", Secondary: "#f59e0b", Accent: "#6366f1"},
	"amber":   {Primary: "#f59e0b", Secondary: "#6366f1", Accent: "#e11d48"},
	"violet":  {Primary: "#7c3aed", Secondary: "#ec4899", Accent: "#22c55e"},
	"teal":    {Primary: "#14b8a6", Secondary: "#f87171", Accent: "#facc15"},
	"slate":   {Primary: "#64748b", Secondary: "#0f172a", Accent: "#38bdf8"},
	"sunset":  {Primary: "#f97316", Secondary: "#db2777", Accent: "#facc15"},
	"ocean":   {Primary: "#0369a1", Secondary: "#06b6d4", Accent: "#a5f3fc"},
	"forest":  {Primary: "#166534", Secondary: "#a16207", Accent: "#84cc16"},
	"mono":    {Primary: "#3b82f6", Secondary: "#1e40af", Accent: "#93c5fd"},
}

// GetPalette returns a starter palette by name, or nil.
func GetPalette(name string) *Palette {
	colors, ok := palettes[name]
	if !ok {
		return nil
	}
	return &Palette{Name: name, Colors: colors}
}

// ListPalettes returns all starter palettes in display order.
func ListPalettes() []*Palette {
	var out []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}
