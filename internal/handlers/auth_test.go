// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/auth"
	"golang.org/x/oauth2"
)

func newFakeGoogle(t *testing.T) *auth.GoogleProvider {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"g-42","email":"Painter@Example.com","email_verified":true,"name":"Painter","picture":"https://lh3.googleusercontent.com/a/p"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	p := auth.NewGoogleProvider("client-id", "client-secret", "http://localhost/auth/google/callback")
	p.Config.Endpoint = oauth2.Endpoint{
		AuthURL:   server.URL + "/auth",
		TokenURL:  server.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.UserInfoURL = server.URL + "/userinfo"
	return p
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestGoogleSignInFlow(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{Google: newFakeGoogle(t)})

	w := doRequest(r, "GET", "/auth/google/login", nil, "")
	if w.Code != http.StatusFound {
		t.Fatalf("Expected redirect, got %d", w.Code)
	}
	stateCookie := findCookie(w, auth.StateCookie)
	if stateCookie == nil || stateCookie.Value == "" {
		t.Fatal("Expected state cookie")
	}
	loc, _ := url.Parse(w.Header().Get("Location"))
	if loc.Query().Get("state") != stateCookie.Value {
		t.Error("Auth URL state should match the cookie")
	}

	req := httptest.NewRequest("GET", "/auth/google/callback?code=good-code&state="+url.QueryEscape(stateCookie.Value), nil)
	req.AddCookie(stateCookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("Expected redirect home, got %d %s: %s", w.Code, w.Header().Get("Location"), w.Body.String())
	}
	session := findCookie(w, auth.SessionCookie)
	if session == nil || session.Value == "" {
		t.Fatal("Expected session cookie")
	}
	if !session.HttpOnly {
		t.Error("Session cookie should be HttpOnly")
	}

	w = doRequest(r, "GET", "/api/me", nil, session.Value)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /api/me, got %d", w.Code)
	}
	var me struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatarUrl"`
	}
	decode(t, w, &me)
	if me.Email != "painter@example.com" || me.Name != "Painter" {
		t.Errorf("Unexpected user %+v", me)
	}
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{Google: newFakeGoogle(t)})

	req := httptest.NewRequest("GET", "/auth/google/callback?code=good-code&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: auth.StateCookie, Value: "expected"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for mismatched state, got %d", w.Code)
	}
	if findCookie(w, auth.SessionCookie) != nil {
		t.Error("No session should be issued")
	}

	w = doRequest(r, "GET", "/auth/google/callback?error=access_denied", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for cancelled sign-in, got %d", w.Code)
	}
}

func TestGoogleCallbackBadCode(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{Google: newFakeGoogle(t)})

	req := httptest.NewRequest("GET", "/auth/google/callback?code=bad-code&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: auth.StateCookie, Value: "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 when the code exchange fails, got %d", w.Code)
	}
}

func TestGoogleSignInNotConfigured(t *testing.T) {
	r, _ := setupTestRouter(t, Deps{})

	if w := doRequest(r, "GET", "/auth/google/login", nil, ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", w.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/auth/logout", nil)

	LogoutHandler(c)

	cookie := findCookie(w, auth.SessionCookie)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Error("Expected session cookie to be cleared")
	}
}

func TestAdminUsersHandler(t *testing.T) {
	r, database := setupTestRouter(t, Deps{})
	_, userToken := createTestUser(t, database, "user@example.com", false)
	_, adminToken := createTestUser(t, database, "admin@example.com", true)

	if w := doRequest(r, "GET", "/api/admin/users", nil, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
	if w := doRequest(r, "GET", "/api/admin/users", nil, userToken); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}

	w := doRequest(r, "GET", "/api/admin/users", nil, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
	}
	decode(t, w, &body)
	if len(body.Users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(body.Users))
	}
}
