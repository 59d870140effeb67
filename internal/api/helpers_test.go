package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/db"
	"github.com/studentbridge/buddydesk/internal/models"
	"github.com/studentbridge/buddydesk/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "buddydesk-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret", false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func createTestUser(t *testing.T, handler *Handler, email string, password string, role models.Role) *models.User {
	t.Helper()
	user, err := handler.identity.CreateUser(services.CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}, password)
	if err != nil {
		t.Fatalf("create test user %s: %v", email, err)
	}
	return user
}

func createTestMentee(t *testing.T, handler *Handler, buddyID string, email string) *models.Mentee {
	t.Helper()
	mentee, err := handler.mentees.CreateMentee(services.CreateMenteeInput{
		BuddyID: buddyID,
		Email:   email,
	})
	if err != nil {
		t.Fatalf("create test mentee %s: %v", email, err)
	}
	return mentee
}

func jsonRequest(t *testing.T, method string, path string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func loginCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()
	request := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login to succeed, got status %d", response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("expected session cookie in login response")
	return ""
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, cookie string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	request := jsonRequest(t, method, path, payload)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	decoded := map[string]any{}
	if len(raw) > 0 {
		// Array bodies are left undecoded; callers needing them re-parse.
		_ = json.Unmarshal(raw, &decoded)
	}
	return response, decoded
}
