// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/thatcatcamp/windpalette/internal/color"
)

// Colors represents all generated colors for a theme: an eleven step scale
// per brand color plus the derived status colors.
type Colors struct {
	Theme     ThemeColors        `json:"theme"`
	Position  color.BasePosition `json:"position"`
	Primary   color.Scale        `json:"primary"`
	Secondary color.Scale        `json:"secondary,omitempty"`
	Accent    color.Scale        `json:"accent,omitempty"`
	Status    color.StatusColors `json:"status"`
}

// GenerateColors expands a theme into its full presentational palette.
// Missing secondary/accent colors fall back to the previous brand color when
// deriving status colors.
func GenerateColors(theme ThemeColors, position color.BasePosition) (*Colors, error) {
	if theme.Primary == "" {
		return nil, fmt.Errorf("primary color is required: %w", color.ErrInvalidHex)
	}

	out := &Colors{Theme: theme, Position: position}

	var err error
	if out.Primary, err = color.GenerateScale(theme.Primary, position); err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	if theme.Secondary != "" {
		if out.Secondary, err = color.GenerateScale(theme.Secondary, position); err != nil {
			return nil, fmt.Errorf("secondary: %w", err)
		}
	}
	if theme.Accent != "" {
		if out.Accent, err = color.GenerateScale(theme.Accent, position); err != nil {
			return nil, fmt.Errorf("accent: %w", err)
		}
	}

	secondary := theme.Secondary
	if secondary == "" {
		secondary = theme.Primary
	}
	accent := theme.Accent
	if accent == "" {
		accent = secondary
	}
	if out.Status, err = color.GenerateStatusColors(theme.Primary, secondary, accent); err != nil {
		return nil, err
	}

	return out, nil
}
