// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/thatcatcamp/windpalette/internal/color"
)

// Sink receives named color scales, e.g. to write CSS variables or a
// Tailwind config.
type Sink interface {
	Apply(name string, scale color.Scale) error
}

// Status shades are projected onto these scale steps.
const (
	statusLightShade color.Shade = 300
	statusBaseShade  color.Shade = 500
	statusDarkShade  color.Shade = 700
)

func statusScale(cs color.ColorShade) color.Scale {
	return color.Scale{
		statusLightShade: cs.Light,
		statusBaseShade:  cs.Base,
		statusDarkShade:  cs.Dark,
	}
}

// ApplyColors pushes every scale of colors into sink.
func ApplyColors(colors *Colors, sink Sink) error {
	scales := []struct {
		name  string
		scale color.Scale
	}{
		{"primary", colors.Primary},
		{"secondary", colors.Secondary},
		{"accent", colors.Accent},
	}
	for _, s := range scales {
		if len(s.scale) == 0 {
			continue
		}
		if err := sink.Apply(s.name, s.scale); err != nil {
			return fmt.Errorf("apply %s: %w", s.name, err)
		}
	}

	status := colors.Status.Map()
	for _, name := range color.StatusNames {
		if err := sink.Apply(name, statusScale(status[name])); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// CSSVariables renders scales as custom properties on :root.
type CSSVariables struct {
	lines []string
}

// Apply adds --<name>-<shade> variables and a --<name>-contrast text color.
func (s *CSSVariables) Apply(name string, scale color.Scale) error {
	for _, shade := range color.Shades {
		hex, ok := scale[shade]
		if !ok {
			continue
		}
		s.lines = append(s.lines, fmt.Sprintf("  --%s-%d: %s;", name, shade, hex))
	}
	if hex, ok := scale[500]; ok {
		contrast, err := color.ContrastColor(hex)
		if err != nil {
			return err
		}
		s.lines = append(s.lines, fmt.Sprintf("  --%s-contrast: %s;", name, contrast))
	}
	return nil
}

// String returns the :root block.
func (s *CSSVariables) String() string {
	return ":root {\n" + strings.Join(s.lines, "\n") + "\n}\n"
}

// TailwindConfig renders scales as theme.extend.colors.
type TailwindConfig struct {
	colors map[string]map[string]string
}

// Apply adds one color family; the 500 step doubles as DEFAULT.
func (t *TailwindConfig) Apply(name string, scale color.Scale) error {
	if t.colors == nil {
		t.colors = make(map[string]map[string]string)
	}
	family := make(map[string]string, len(scale)+1)
	for shade, hex := range scale {
		family[strconv.Itoa(int(shade))] = hex
	}
	if hex, ok := scale[500]; ok {
		family["DEFAULT"] = hex
	}
	t.colors[name] = family
	return nil
}

// String returns a tailwind.config.js body.
func (t *TailwindConfig) String() (string, error) {
	body, err := json.MarshalIndent(map[string]any{
		"theme": map[string]any{
			"extend": map[string]any{"colors": t.colors},
		},
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tailwind config: %w", err)
	}
	return "/** @type {import('tailwindcss').Config} */\nmodule.exports = " + string(body) + "\n", nil
}

// GenerateTailwindConfig renders colors as a Tailwind config file.
func GenerateTailwindConfig(colors *Colors) (string, error) {
	var sink TailwindConfig
	if err := ApplyColors(colors, &sink); err != nil {
		return "", err
	}
	return sink.String()
}

// GenerateCSS renders colors as CSS variables followed by base element
// styles that use them.
func GenerateCSS(colors *Colors) (string, error) {
	var sink CSSVariables
	if err := ApplyColors(colors, &sink); err != nil {
		return "", err
	}
	return sink.String() + baseStyles, nil
}

const baseStyles = `
/* Base element styles */
a {
  color: var(--primary-600);
}

button, .btn {
  background-color: var(--primary-500);
  color: var(--primary-contrast);
  border: none;
  padding: 8px 16px;
  border-radius: 6px;
  cursor: pointer;
}

button:hover, .btn:hover {
  background-color: var(--primary-600);
}

.card, .surface {
  background-color: var(--primary-50);
  border: 1px solid var(--primary-200);
  border-radius: 8px;
  padding: 16px;
}

/* Status colors */
.info { color: var(--info-500); }
.success { color: var(--success-500); }
.warning { color: var(--warning-500); }
.error, .danger { color: var(--error-500); }
`
