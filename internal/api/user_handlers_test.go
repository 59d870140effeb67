package api

import (
	"net/http"
	"testing"

	"github.com/studentbridge/buddydesk/internal/models"
)

func TestDeleteUserSelfDeletionForbidden(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "admin@example.com", "StrongPass1", models.RoleAdmin)
	cookie := loginCookie(t, app, "admin@example.com", "StrongPass1")

	response, body := doJSON(t, app, http.MethodDelete, "/api/users/admin@example.com", cookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
	if body["reason"] != "You can not delete yourself" {
		t.Fatalf("unexpected reason %#v", body["reason"])
	}
}

func TestHRCannotDeleteAdmin(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "admin@example.com", "StrongPass1", models.RoleAdmin)
	createTestUser(t, handler, "hr@example.com", "StrongPass1", models.RoleHR)
	cookie := loginCookie(t, app, "hr@example.com", "StrongPass1")

	response, body := doJSON(t, app, http.MethodDelete, "/api/users/admin@example.com", cookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
	if body["reason"] == "" || body["reason"] == nil {
		t.Fatal("expected a reason in the denial")
	}
}

func TestAdminDeletesCleanBuddy(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "admin@example.com", "StrongPass1", models.RoleAdmin)
	createTestUser(t, handler, "buddy@example.com", "StrongPass1", models.RoleBuddy)
	cookie := loginCookie(t, app, "admin@example.com", "StrongPass1")

	response, _ := doJSON(t, app, http.MethodDelete, "/api/users/buddy@example.com", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	user, err := handler.identity.GetUserByEmail("buddy@example.com")
	if err != nil {
		t.Fatalf("lookup after delete: %v", err)
	}
	if user != nil {
		t.Fatalf("expected user to be deleted, got %#v", user)
	}
}

func TestDeleteUserBlockedByAssignedMentees(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "admin@example.com", "StrongPass1", models.RoleAdmin)
	buddy := createTestUser(t, handler, "buddy@example.com", "StrongPass1", models.RoleBuddy)
	createTestMentee(t, handler, buddy.ID, "mentee@example.com")
	cookie := loginCookie(t, app, "admin@example.com", "StrongPass1")

	response, body := doJSON(t, app, http.MethodDelete, "/api/users/buddy@example.com", cookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
	if body["reason"] != "User still has mentees assigned" {
		t.Fatalf("unexpected reason %#v", body["reason"])
	}
}

func TestBuddyCannotListUsers(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "buddy@example.com", "StrongPass1", models.RoleBuddy)
	cookie := loginCookie(t, app, "buddy@example.com", "StrongPass1")

	response, _ := doJSON(t, app, http.MethodGet, "/api/users", cookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
}

func TestCreateUserIssuesTemporaryPassword(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "hr@example.com", "StrongPass1", models.RoleHR)
	cookie := loginCookie(t, app, "hr@example.com", "StrongPass1")

	response, body := doJSON(t, app, http.MethodPost, "/api/users", cookie, map[string]any{
		"email":     "new.buddy@example.com",
		"firstName": "Ana",
		"lastName":  "Silva",
		"role":      "0",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%#v)", response.StatusCode, body)
	}

	temporaryPassword, _ := body["temporaryPassword"].(string)
	if temporaryPassword == "" {
		t.Fatal("expected a temporary password in the response")
	}

	// The generated credential must actually work.
	loginCookie(t, app, "new.buddy@example.com", temporaryPassword)
}

func TestCreateUserCannotOutrankActor(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, handler, "hr@example.com", "StrongPass1", models.RoleHR)
	cookie := loginCookie(t, app, "hr@example.com", "StrongPass1")

	response, _ := doJSON(t, app, http.MethodPost, "/api/users", cookie, map[string]any{
		"email":     "boss@example.com",
		"firstName": "Big",
		"lastName":  "Boss",
		"role":      "3",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
}
