package db

import (
	"path/filepath"
	"testing"

	"github.com/studentbridge/buddydesk/internal/models"
)

func openTestDatabase(t *testing.T) *UserRepository {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "buddydesk-users.db"))
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
	return NewUserRepository(database)
}

func TestFindByEmailResolvesThroughDerivedKey(t *testing.T) {
	repo := openTestDatabase(t)

	user := models.User{
		ID:        models.UserKey("maria@example.com").String(),
		Email:     "maria@example.com",
		FirstName: "Maria",
		LastName:  "Lopez",
		Role:      models.RoleBuddy,
	}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byEmail, err := repo.FindByEmail("MARIA@Example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	byID, err := repo.FindByID("User#maria@example.com")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byEmail == nil || byID == nil {
		t.Fatal("expected the user to be found both ways")
	}
	if byEmail.ID != byID.ID || byEmail.Email != byID.Email {
		t.Fatalf("email and id lookups disagree: %#v vs %#v", byEmail, byID)
	}
}

func TestFindByIDReturnsAbsenceNotError(t *testing.T) {
	repo := openTestDatabase(t)

	user, err := repo.FindByID("User#ghost@example.com")
	if err != nil {
		t.Fatalf("expected no error for missing user, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected absence, got %#v", user)
	}
}

func TestUserEmailUniqueIndexIsCaseInsensitive(t *testing.T) {
	repo := openTestDatabase(t)

	first := models.User{
		ID:    "User#qa@example.com",
		Email: "QA@Example.com",
		Role:  models.RoleBuddy,
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	second := models.User{
		ID:    "User#other",
		Email: "qa@example.com",
		Role:  models.RoleBuddy,
	}
	if err := repo.Create(&second); err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}
}

func TestCredentialLifecycle(t *testing.T) {
	repo := openTestDatabase(t)
	userID := models.UserKey("cred@example.com").String()

	if err := repo.UpsertCredential(&models.Credential{UserID: userID, PasswordHash: "hash-1"}); err != nil {
		t.Fatalf("upsert credential: %v", err)
	}

	credential, err := repo.FindCredential(userID)
	if err != nil {
		t.Fatalf("find credential: %v", err)
	}
	if credential == nil || credential.PasswordHash != "hash-1" {
		t.Fatalf("unexpected credential %#v", credential)
	}

	if err := repo.DeleteCredential(userID); err != nil {
		t.Fatalf("delete credential: %v", err)
	}
	credential, err = repo.FindCredential(userID)
	if err != nil {
		t.Fatalf("find credential after delete: %v", err)
	}
	if credential != nil {
		t.Fatalf("expected credential to be gone, got %#v", credential)
	}
}
