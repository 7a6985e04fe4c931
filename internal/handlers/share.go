// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/color"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/gallery"
	"github.com/thatcatcamp/windpalette/internal/models"
	"github.com/thatcatcamp/windpalette/internal/preview"
	"github.com/thatcatcamp/windpalette/internal/themes"
)

var sharePage = template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Name}} - WindPalette</title>
	<meta property="og:title" content="{{.Name}}">
	<meta property="og:description" content="{{.Description}}">
	<meta property="og:image" content="{{.PreviewURL}}">
	<link rel="stylesheet" href="{{.CSSPath}}">
	<style>
		body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 0; padding: 40px; background: #fafaf8; color: #2d2d2d; }
		.scale { display: flex; margin: 16px 0; border-radius: 6px; overflow: hidden; }
		.swatch { flex: 1; height: 64px; font-size: 11px; display: flex; align-items: flex-end; padding: 4px; }
		a { color: var(--primary-700); }
	</style>
</head>
<body>
	<h1>{{.Name}}</h1>
	{{if .Description}}<p>{{.Description}}</p>{{end}}
	{{range .Scales}}
	<h2>{{.Name}}</h2>
	<div class="scale">
		{{range .Swatches}}<div class="swatch" style="background: {{.Hex}}; color: {{.Text}}">{{.Shade}}</div>{{end}}
	</div>
	{{end}}
	<p>
		<a href="{{.CSSPath}}">theme.css</a> &middot;
		<a href="{{.TailwindPath}}">tailwind.config.js</a> &middot;
		<a href="{{.PreviewPath}}">preview.png</a>
	</p>
	<p>{{.Likes}} likes</p>
</body>
</html>
`))

type shareSwatch struct {
	Shade color.Shade
	Hex   template.CSS
	Text  template.CSS
}

type shareScale struct {
	Name     string
	Swatches []shareSwatch
}

type sharePageData struct {
	Name         string
	Description  string
	Likes        int64
	Scales       []shareScale
	CSSPath      string
	TailwindPath string
	PreviewPath  string
	PreviewURL   string
}

// newShareScale builds the swatch row. The hex values are validated colors
// so they are safe to mark as CSS.
func newShareScale(name string, scale color.Scale) shareScale {
	row := shareScale{Name: name}
	for _, shade := range color.Shades {
		hex := scale[shade]
		text, err := color.ContrastColor(hex)
		if err != nil {
			continue
		}
		row.Swatches = append(row.Swatches, shareSwatch{Shade: shade, Hex: template.CSS(hex), Text: template.CSS(text)})
	}
	return row
}

// loadSharedTheme resolves :share and expands the theme. It writes the
// error response itself.
func loadSharedTheme(c *gin.Context) (*models.Theme, *themes.Colors, bool) {
	theme, err := gallery.GetThemeByShareID(db.GetDB(), c.Param("share"), viewerID(c))
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			c.String(http.StatusNotFound, "Theme not found")
			return nil, nil, false
		}
		respondError(c, err)
		return nil, nil, false
	}

	colors, err := themes.GenerateColors(gallery.Colors(theme), gallery.Position(theme))
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return theme, colors, true
}

// SharePageHandler renders the public page of a shared theme
func SharePageHandler(c *gin.Context) {
	theme, colors, ok := loadSharedTheme(c)
	if !ok {
		return
	}

	base := "/s/" + theme.ShareID
	data := sharePageData{
		Name:         theme.Name,
		Description:  theme.Description,
		Likes:        theme.LikeCount,
		CSSPath:      base + "/theme.css",
		TailwindPath: base + "/tailwind.config.js",
		PreviewPath:  base + "/preview.png",
		PreviewURL:   shareURL(theme) + "/preview.png",
	}
	data.Scales = append(data.Scales, newShareScale("primary", colors.Primary))
	if colors.Secondary != nil {
		data.Scales = append(data.Scales, newShareScale("secondary", colors.Secondary))
	}
	if colors.Accent != nil {
		data.Scales = append(data.Scales, newShareScale("accent", colors.Accent))
	}

	var buf bytes.Buffer
	if err := sharePage.Execute(&buf, data); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ShareCSSHandler serves the theme as CSS custom properties
func ShareCSSHandler(c *gin.Context) {
	_, colors, ok := loadSharedTheme(c)
	if !ok {
		return
	}

	css, err := themes.GenerateCSS(colors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// ShareTailwindHandler serves the theme as a Tailwind config download
func ShareTailwindHandler(c *gin.Context) {
	_, colors, ok := loadSharedTheme(c)
	if !ok {
		return
	}

	cfg, err := themes.GenerateTailwindConfig(colors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="tailwind.config.js"`)
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(cfg))
}

// SharePreviewHandler renders the theme scales as a PNG
func SharePreviewHandler(c *gin.Context) {
	_, colors, ok := loadSharedTheme(c)
	if !ok {
		return
	}

	scales := []color.Scale{colors.Primary}
	if colors.Secondary != nil {
		scales = append(scales, colors.Secondary)
	}
	if colors.Accent != nil {
		scales = append(scales, colors.Accent)
	}

	img, err := preview.RenderScales(scales, preview.DefaultWidth, preview.DefaultHeight)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := preview.EncodePNG(&buf, img); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
