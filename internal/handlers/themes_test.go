// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type randomThemeBody struct {
	Colors struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Accent    string `json:"accent"`
	} `json:"colors"`
	Harmony string `json:"harmony"`
	Palette struct {
		Primary map[string]string `json:"primary"`
	} `json:"palette"`
}

func TestRandomThemeHandler(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	req := map[string]any{
		"colorCount":  2,
		"seed":        42,
		"preferences": map[string]string{"style": "bold", "colorFamily": "blue"},
	}
	w := doRequest(r, "POST", "/api/themes/random", req, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var first randomThemeBody
	decode(t, w, &first)

	if first.Colors.Primary == "" || first.Colors.Secondary == "" {
		t.Errorf("Expected two colors, got %+v", first.Colors)
	}
	if first.Colors.Accent != "" {
		t.Errorf("Expected no accent for two colors, got %s", first.Colors.Accent)
	}
	if first.Palette.Primary["500"] != first.Colors.Primary {
		t.Errorf("Palette should be built around the primary color")
	}

	w = doRequest(r, "POST", "/api/themes/random", req, "")
	var second randomThemeBody
	decode(t, w, &second)
	if first.Colors != second.Colors || first.Harmony != second.Harmony {
		t.Errorf("Seeded requests should match: %+v vs %+v", first.Colors, second.Colors)
	}
}

func TestRandomThemeHandlerDefaults(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	w := doRequest(r, "POST", "/api/themes/random", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for empty body, got %d: %s", w.Code, w.Body.String())
	}
	var body randomThemeBody
	decode(t, w, &body)
	if body.Colors.Accent == "" {
		t.Error("Expected three colors by default")
	}
}

func TestRandomThemeHandlerChunkedEmptyBody(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	req := httptest.NewRequest("POST", "/api/themes/random", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for chunked empty body, got %d: %s", w.Code, w.Body.String())
	}
	var body randomThemeBody
	decode(t, w, &body)
	if body.Colors.Accent == "" {
		t.Error("Expected three colors by default")
	}

	req = httptest.NewRequest("POST", "/api/themes/random", strings.NewReader("{"))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for truncated JSON, got %d", w.Code)
	}
}

func TestRandomThemeHandlerErrors(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"too many colors", map[string]any{"colorCount": 4}},
		{"negative count", map[string]any{"colorCount": -1}},
		{"unknown mood", map[string]any{"preferences": map[string]string{"mood": "sleepy"}}},
		{"bad position", map[string]any{"position": "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "POST", "/api/themes/random", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestPalettesHandler(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	w := doRequest(r, "GET", "/api/palettes", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body struct {
		Palettes []struct {
			Name string `json:"name"`
		} `json:"palettes"`
	}
	decode(t, w, &body)
	if len(body.Palettes) == 0 || body.Palettes[0].Name != "sky" {
		t.Errorf("Unexpected palettes %+v", body.Palettes)
	}
}

type savedTheme struct {
	ID        uint   `json:"id"`
	ShareID   string `json:"shareId"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	IsPublic  bool   `json:"isPublic"`
	LikeCount int64  `json:"likeCount"`
	ShareURL  string `json:"shareUrl"`
}

func createTheme(t *testing.T, r http.Handler, token string, body map[string]any) savedTheme {
	t.Helper()
	w := doRequest(r, "POST", "/api/themes", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var theme savedTheme
	decode(t, w, &theme)
	return theme
}

func TestThemeCRUD(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, token := createTestUser(t, database, "owner@example.com", false)

	if w := doRequest(r, "POST", "/api/themes", map[string]any{"name": "x"}, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without session, got %d", w.Code)
	}

	theme := createTheme(t, r, token, map[string]any{
		"name":      "  Ocean  ",
		"primary":   "#0369A1",
		"secondary": "#06b6d4",
		"isPublic":  true,
	})
	if theme.Name != "Ocean" || theme.Primary != "#0369a1" {
		t.Errorf("Expected normalized theme, got %+v", theme)
	}
	if theme.ShareURL != "https://palette.example.com/s/"+theme.ShareID {
		t.Errorf("Unexpected share URL %s", theme.ShareURL)
	}

	path := fmt.Sprintf("/api/themes/%d", theme.ID)
	w := doRequest(r, "GET", path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var got struct {
		Theme   savedTheme `json:"theme"`
		Liked   bool       `json:"liked"`
		Palette struct {
			Primary map[string]string `json:"primary"`
		} `json:"palette"`
	}
	decode(t, w, &got)
	if got.Theme.ID != theme.ID || got.Liked || got.Palette.Primary["500"] != "#0369a1" {
		t.Errorf("Unexpected theme %+v", got)
	}

	w = doRequest(r, "PUT", path, map[string]any{"name": "Deep Ocean", "primary": "#075985"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", w.Code, w.Body.String())
	}
	var updated savedTheme
	decode(t, w, &updated)
	if updated.Name != "Deep Ocean" || updated.IsPublic {
		t.Errorf("Unexpected update result %+v", updated)
	}

	w = doRequest(r, "GET", "/api/themes", nil, token)
	var list struct {
		Themes []savedTheme `json:"themes"`
	}
	decode(t, w, &list)
	if len(list.Themes) != 1 {
		t.Errorf("Expected 1 theme, got %d", len(list.Themes))
	}

	if w := doRequest(r, "DELETE", path, nil, token); w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	if w := doRequest(r, "GET", path, nil, token); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestThemeValidation(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, token := createTestUser(t, database, "owner@example.com", false)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"empty name", map[string]any{"name": "   ", "primary": "#0369a1"}},
		{"bad primary", map[string]any{"name": "Ocean", "primary": "ocean"}},
		{"accent without secondary", map[string]any{"name": "Ocean", "primary": "#0369a1", "accent": "#ffffff"}},
		{"bad position", map[string]any{"name": "Ocean", "primary": "#0369a1", "basePosition": "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "POST", "/api/themes", tt.body, token)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestThemeOwnership(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, ownerToken := createTestUser(t, database, "owner@example.com", false)
	_, otherToken := createTestUser(t, database, "other@example.com", false)
	_, adminToken := createTestUser(t, database, "admin@example.com", true)

	private := createTheme(t, r, ownerToken, map[string]any{"name": "Secret", "primary": "#111827"})
	public := createTheme(t, r, ownerToken, map[string]any{"name": "Shared", "primary": "#f97316", "isPublic": true})

	privatePath := fmt.Sprintf("/api/themes/%d", private.ID)
	publicPath := fmt.Sprintf("/api/themes/%d", public.ID)

	if w := doRequest(r, "GET", privatePath, nil, otherToken); w.Code != http.StatusNotFound {
		t.Errorf("Private theme should be hidden from others, got %d", w.Code)
	}
	if w := doRequest(r, "GET", publicPath, nil, otherToken); w.Code != http.StatusOK {
		t.Errorf("Public theme should be visible, got %d", w.Code)
	}
	if w := doRequest(r, "PUT", publicPath, map[string]any{"name": "Mine", "primary": "#000000"}, otherToken); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 editing someone else's theme, got %d", w.Code)
	}
	if w := doRequest(r, "DELETE", publicPath, nil, otherToken); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 deleting someone else's theme, got %d", w.Code)
	}
	if w := doRequest(r, "DELETE", privatePath, nil, adminToken); w.Code != http.StatusNoContent {
		t.Errorf("Admins may delete any theme, got %d", w.Code)
	}
}

func TestLikeThemeHandler(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, ownerToken := createTestUser(t, database, "owner@example.com", false)
	_, fanToken := createTestUser(t, database, "fan@example.com", false)

	theme := createTheme(t, r, ownerToken, map[string]any{"name": "Sunset", "primary": "#f97316", "isPublic": true})
	path := fmt.Sprintf("/api/themes/%d/like", theme.ID)

	var body struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"likeCount"`
	}

	w := doRequest(r, "POST", path, nil, fanToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	decode(t, w, &body)
	if !body.Liked || body.LikeCount != 1 {
		t.Errorf("Expected liked with 1 like, got %+v", body)
	}

	w = doRequest(r, "POST", path, nil, fanToken)
	decode(t, w, &body)
	if body.Liked || body.LikeCount != 0 {
		t.Errorf("Second like should toggle off, got %+v", body)
	}

	private := createTheme(t, r, ownerToken, map[string]any{"name": "Hidden", "primary": "#111827"})
	if w := doRequest(r, "POST", fmt.Sprintf("/api/themes/%d/like", private.ID), nil, fanToken); w.Code != http.StatusNotFound {
		t.Errorf("Liking a private theme should 404, got %d", w.Code)
	}
}
