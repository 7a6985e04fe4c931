// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"github.com/thatcatcamp/windpalette/internal/preview"
)

func TestShareRoutes(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, token := createTestUser(t, database, "owner@example.com", false)

	theme := createTheme(t, r, token, map[string]any{
		"name":        "Sand & Sea",
		"description": "<script>alert(1)</script>Warm beach tones",
		"primary":     "#0369a1",
		"secondary":   "#f59e0b",
		"accent":      "#e11d48",
		"isPublic":    true,
	})
	base := "/s/" + theme.ShareID

	w := doRequest(r, "GET", base, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	page := w.Body.String()
	if !strings.Contains(page, "Sand &amp; Sea") {
		t.Error("Expected escaped theme name in page")
	}
	if strings.Contains(page, "<script>") {
		t.Error("Description markup must not reach the page")
	}
	if !strings.Contains(page, base+"/theme.css") {
		t.Error("Expected stylesheet link")
	}
	if !strings.Contains(page, "https://palette.example.com"+base+"/preview.png") {
		t.Error("Expected absolute preview URL for link unfurls")
	}

	w = doRequest(r, "GET", base+"/theme.css", nil, "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("Unexpected CSS response %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "--primary-500: #0369a1;") {
		t.Error("Expected primary variables in CSS")
	}

	w = doRequest(r, "GET", base+"/tailwind.config.js", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "module.exports") {
		t.Error("Expected a Tailwind config module")
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "tailwind.config.js") {
		t.Error("Expected download filename")
	}

	w = doRequest(r, "GET", base+"/preview.png", nil, "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("Unexpected preview response %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Preview is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != preview.DefaultWidth || b.Dy() != preview.DefaultHeight {
		t.Errorf("Unexpected preview size %v", b)
	}
}

func TestSharePrivateTheme(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, ownerToken := createTestUser(t, database, "owner@example.com", false)
	_, otherToken := createTestUser(t, database, "other@example.com", false)

	theme := createTheme(t, r, ownerToken, map[string]any{"name": "Draft", "primary": "#111827"})
	path := fmt.Sprintf("/s/%s", theme.ShareID)

	if w := doRequest(r, "GET", path, nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("Anonymous viewers should get 404, got %d", w.Code)
	}
	if w := doRequest(r, "GET", path+"/theme.css", nil, otherToken); w.Code != http.StatusNotFound {
		t.Errorf("Other users should get 404, got %d", w.Code)
	}
	if w := doRequest(r, "GET", path, nil, ownerToken); w.Code != http.StatusOK {
		t.Errorf("Owner should see their private theme, got %d", w.Code)
	}
	if w := doRequest(r, "GET", "/s/does-not-exist", nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("Unknown share should 404, got %d", w.Code)
	}
}
