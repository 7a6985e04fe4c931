// SPDX-License-Identifier: MIT
package color

// ColorShade is one status color with a lighter and a darker variant.
type ColorShade struct {
	Base  string `json:"base"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// StatusColors holds the semantic colors derived from a brand triad.
type StatusColors struct {
	Info    ColorShade `json:"info"`
	Success ColorShade `json:"success"`
	Warning ColorShade `json:"warning"`
	Error   ColorShade `json:"error"`
}

// Status names, in display order.
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

var StatusNames = []string{StatusInfo, StatusSuccess, StatusWarning, StatusError}

// Map returns the status colors keyed by status name.
func (s StatusColors) Map() map[string]ColorShade {
	return map[string]ColorShade{
		StatusInfo:    s.Info,
		StatusSuccess: s.Success,
		StatusWarning: s.Warning,
		StatusError:   s.Error,
	}
}

// Semantic anchors the status colors are pulled toward.
var (
	SuccessAnchor = HSL{H: 142, S: 70, L: 45}
	WarningAnchor = HSL{H: 45, S: 93, L: 47}
	ErrorAnchor   = HSL{H: 0, S: 84, L: 60}
)

const (
	infoLightnessShift = 15

	// anchorHueWeight keeps status hues recognisable regardless of brand.
	anchorHueWeight = 0.7

	baseBlendRatio  = 0.6
	lightBlendRatio = 0.4
	darkBlendRatio  = 0.8
)

// blend pulls base toward target. Hue always takes 70% of the target;
// saturation and lightness move by ratio.
func blend(base, target HSL, ratio float64) string {
	return HSLToHex(HSL{
		H: target.H*anchorHueWeight + base.H*(1-anchorHueWeight),
		S: base.S*(1-ratio) + target.S*ratio,
		L: base.L*(1-ratio) + target.L*ratio,
	})
}

// GenerateStatusColors derives info/success/warning/error from a brand triad.
// Which brand color feeds which variant is fixed:
//
//	success: primary, secondary (light), primary (dark)
//	warning: secondary, accent (light), secondary (dark)
//	error:   accent, primary (light), accent (dark)
func GenerateStatusColors(primary, secondary, accent string) (StatusColors, error) {
	p, err := HexToHSL(primary)
	if err != nil {
		return StatusColors{}, err
	}
	s, err := HexToHSL(secondary)
	if err != nil {
		return StatusColors{}, err
	}
	a, err := HexToHSL(accent)
	if err != nil {
		return StatusColors{}, err
	}

	return StatusColors{
		Info: ColorShade{
			Base:  primary,
			Light: HSLToHex(Lighten(p, infoLightnessShift)),
			Dark:  HSLToHex(Darken(p, infoLightnessShift)),
		},
		Success: ColorShade{
			Base:  blend(p, SuccessAnchor, baseBlendRatio),
			Light: blend(s, SuccessAnchor, lightBlendRatio),
			Dark:  blend(p, SuccessAnchor, darkBlendRatio),
		},
		Warning: ColorShade{
			Base:  blend(s, WarningAnchor, baseBlendRatio),
			Light: blend(a, WarningAnchor, lightBlendRatio),
			Dark:  blend(s, WarningAnchor, darkBlendRatio),
		},
		Error: ColorShade{
			Base:  blend(a, ErrorAnchor, baseBlendRatio),
			Light: blend(p, ErrorAnchor, lightBlendRatio),
			Dark:  blend(a, ErrorAnchor, darkBlendRatio),
		},
	}, nil
}
