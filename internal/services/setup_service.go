package services

import (
	"github.com/studentbridge/buddydesk/internal/models"
	"github.com/studentbridge/buddydesk/internal/security"
)

// SetupResult reports what first-run bootstrap did. TemporaryPassword is
// only set when the password had to be generated; it is surfaced exactly
// once, in the startup log.
type SetupResult struct {
	Created           bool
	Email             string
	TemporaryPassword string
}

// EnsureInitialAdmin seeds an ADMIN account when the store holds no users
// at all. An empty configured password is replaced with a generated
// temporary one.
func EnsureInitialAdmin(identity *IdentityService, email string, password string) (*SetupResult, error) {
	count, err := identity.CountUsers()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SetupResult{}, nil
	}

	normalized := NormalizeAuthEmail(email)
	if normalized == "" {
		return nil, ErrEmailInvalid
	}

	generated := ""
	if password == "" {
		generated, err = security.TemporaryPassword()
		if err != nil {
			return nil, err
		}
		password = generated
	}

	user, err := identity.CreateUser(CreateUserInput{
		Email:     normalized,
		FirstName: "Admin",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}, password)
	if err != nil {
		return nil, err
	}

	return &SetupResult{
		Created:           true,
		Email:             user.Email,
		TemporaryPassword: generated,
	}, nil
}
