// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/auth"
	"github.com/thatcatcamp/windpalette/internal/color"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/gallery"
	"github.com/thatcatcamp/windpalette/internal/models"
	"github.com/thatcatcamp/windpalette/internal/themes"
)

type randomThemeRequest struct {
	ColorCount  int                `json:"colorCount"`
	Preferences themes.Preferences `json:"preferences"`
	Position    string             `json:"position"`
	Seed        *uint64            `json:"seed"`
}

// RandomThemeHandler composes a theme from preferences. An empty body gives
// a three color theme with the default preferences.
func RandomThemeHandler(c *gin.Context) {
	var req randomThemeRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		// io.EOF means an empty body, chunked or not
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, "invalid request body")
			return
		}
	}
	if req.ColorCount == 0 {
		req.ColorCount = themes.MaxColors
	}

	position, err := color.ParseBasePosition(req.Position)
	if err != nil {
		respondError(c, err)
		return
	}

	generator := themes.NewGenerator()
	if req.Seed != nil {
		generator = themes.NewSeededGenerator(*req.Seed)
	}

	comp, err := generator.Compose(req.ColorCount, req.Preferences.WithDefaults())
	if err != nil {
		respondError(c, err)
		return
	}

	palette, err := themes.GenerateColors(comp.Colors, position)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"colors":  comp.Colors,
		"harmony": comp.Harmony,
		"preset":  comp.Preset,
		"palette": palette,
	})
}

// PalettesHandler lists the built-in starter palettes
func PalettesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"palettes": themes.ListPalettes()})
}

// themeResponse is a saved theme with its public share link.
type themeResponse struct {
	*models.Theme
	ShareURL string `json:"shareUrl"`
}

func shareURL(t *models.Theme) string {
	return config.GetString("server.base_url") + "/s/" + t.ShareID
}

func newThemeResponse(t *models.Theme) themeResponse {
	return themeResponse{Theme: t, ShareURL: shareURL(t)}
}

func viewerID(c *gin.Context) uint {
	if user, ok := auth.CurrentUser(c); ok {
		return user.ID
	}
	return 0
}

// ListMyThemesHandler lists the signed-in user's themes
func ListMyThemesHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	list, err := gallery.ListUserThemes(db.GetDB(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]themeResponse, 0, len(list))
	for i := range list {
		out = append(out, newThemeResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}

// CreateThemeHandler saves a theme for the signed-in user
func CreateThemeHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var input gallery.ThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	theme, err := gallery.CreateTheme(db.GetDB(), user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newThemeResponse(theme))
}

// GetThemeHandler returns a theme visible to the signed-in user along with
// its generated palette
func GetThemeHandler(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	theme, err := gallery.GetTheme(db.GetDB(), id, viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	palette, err := themes.GenerateColors(gallery.Colors(theme), gallery.Position(theme))
	if err != nil {
		respondError(c, err)
		return
	}

	liked := false
	if uid := viewerID(c); uid != 0 {
		if liked, err = gallery.HasLiked(db.GetDB(), uid, theme.ID); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"theme":   newThemeResponse(theme),
		"palette": palette,
		"liked":   liked,
	})
}

// UpdateThemeHandler replaces the editable fields of an owned theme
func UpdateThemeHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input gallery.ThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	theme, err := gallery.UpdateTheme(db.GetDB(), user.ID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newThemeResponse(theme))
}

// DeleteThemeHandler removes a theme. Admins may remove any theme.
func DeleteThemeHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := gallery.DeleteTheme(db.GetDB(), user, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LikeThemeHandler toggles the signed-in user's like on a theme
func LikeThemeHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	liked, count, err := gallery.ToggleLike(db.GetDB(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likeCount": count})
}
