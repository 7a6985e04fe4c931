// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/gallery"
)

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return n, true
}

// GalleryHandler pages through public themes, newest or most liked first
func GalleryHandler(c *gin.Context) {
	sort := c.DefaultQuery("sort", gallery.SortRecent)
	if sort != gallery.SortRecent && sort != gallery.SortPopular {
		badRequest(c, "sort must be recent or popular")
		return
	}

	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	result, err := gallery.ListPublicThemes(db.GetDB(), gallery.ListOptions{
		Sort:   sort,
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]themeResponse, 0, len(result.Themes))
	for i := range result.Themes {
		out = append(out, newThemeResponse(&result.Themes[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"themes": out,
		"total":  result.Total,
		"limit":  result.Limit,
		"offset": result.Offset,
	})
}
