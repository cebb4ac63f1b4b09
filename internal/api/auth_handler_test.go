package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func registerUser(t *testing.T, router *gin.Engine, email, fullName, password string) tokenResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"email":     email,
		"full_name": fullName,
		"password":  password,
	})
	requireStatus(t, w, http.StatusOK)

	var resp tokenResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestRegister_ReturnsTokenAndPublicUser(t *testing.T) {
	router, db := newTestRouter(t)

	resp := registerUser(t, router, "alice@example.com", "Alice Chen", "secret123")

	if resp.AccessToken == "" {
		t.Fatal("expected non-empty access token")
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer got %q", resp.TokenType)
	}
	if resp.User.ID == "" {
		t.Fatal("expected server-assigned user id")
	}
	if resp.User.Email != "alice@example.com" || resp.User.FullName != "Alice Chen" {
		t.Fatalf("unexpected public user: %+v", resp.User)
	}

	// 响应里不能出现密码哈希
	raw := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if body := raw.Body.String(); strings.Contains(body, "password_hash") || strings.Contains(body, "$2a$") {
		t.Fatalf("response leaks password hash: %s", body)
	}

	var count int64
	if err := db.Table("users").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user got %d", count)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	registerUser(t, router, "bob@example.com", "Bob", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"email":     "bob@example.com",
		"full_name": "Bob Again",
		"password":  "othersecret",
	})
	requireStatus(t, w, http.StatusBadRequest)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &body)
	if body.Detail == "" {
		t.Fatal("expected detail message on duplicate email")
	}

	// 重复注册不影响原账号登录
	login := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "bob@example.com",
		"password": "secret123",
	})
	requireStatus(t, login, http.StatusOK)
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"email": "carol@example.com",
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	registerUser(t, router, "dave@example.com", "Dave", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "dave@example.com",
		"password": "wrongpassword",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestMe_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/me", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := registerUser(t, router, "eve@example.com", "Eve", "secret123")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	requireStatus(t, w, http.StatusOK)

	var user publicUser
	decodeBody(t, w, &user)
	if user.ID != resp.User.ID || user.Email != "eve@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
