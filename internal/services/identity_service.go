package services

import (
	"errors"
	"time"

	"github.com/studentbridge/buddydesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrStoreInconsistent marks a record that could not be read back right
// after it was written. The store promises read-after-write, so this is an
// unrecoverable internal fault.
var ErrStoreInconsistent = errors.New("store inconsistent: created record not readable")

var ErrEmailInvalid = errors.New("invalid email address")

type IdentityUserRepository interface {
	CountUsers() (int64, error)
	FindByID(userID string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ListAll() ([]models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	Delete(userID string) error
	UpsertCredential(credential *models.Credential) error
	FindCredential(userID string) (*models.Credential, error)
	DeleteCredential(userID string) error
}

type IdentityService struct {
	users IdentityUserRepository
}

func NewIdentityService(users IdentityUserRepository) *IdentityService {
	return &IdentityService{users: users}
}

type CreateUserInput struct {
	Email          string
	FirstName      string
	LastName       string
	Faculty        string
	Role           models.Role
	AgreementStart time.Time
	AgreementEnd   time.Time
}

// CreateUser hashes the password, persists the credential and user records,
// and returns the freshly read-back user.
func (service *IdentityService) CreateUser(input CreateUserInput, password string) (*models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return nil, ErrEmailInvalid
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := models.UserKey(email).String()
	if err := service.users.UpsertCredential(&models.Credential{
		UserID:       userID,
		PasswordHash: string(passwordHash),
	}); err != nil {
		return nil, err
	}

	user := models.User{
		ID:             userID,
		Email:          email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Faculty:        input.Faculty,
		Role:           input.Role,
		AgreementStart: input.AgreementStart,
		AgreementEnd:   input.AgreementEnd,
	}
	if err := service.users.Create(&user); err != nil {
		return nil, err
	}

	created, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrStoreInconsistent
	}
	return created, nil
}

func (service *IdentityService) GetUserByID(userID string) (*models.User, error) {
	return service.users.FindByID(userID)
}

func (service *IdentityService) GetUserByEmail(email string) (*models.User, error) {
	return service.users.FindByEmail(email)
}

func (service *IdentityService) ListUsers() ([]models.User, error) {
	return service.users.ListAll()
}

func (service *IdentityService) CountUsers() (int64, error) {
	return service.users.CountUsers()
}

// VerifyLogin returns the user only when the stored hash verifies. Unknown
// email and wrong password both come back as plain absence so the response
// cannot leak which accounts exist.
func (service *IdentityService) VerifyLogin(email string, password string) (*models.User, error) {
	user, err := service.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	credential, err := service.users.FindCredential(user.ID)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UpdateUser replaces the whole record.
func (service *IdentityService) UpdateUser(user *models.User) error {
	return service.users.Save(user)
}

func (service *IdentityService) ChangePassword(userID string, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpsertCredential(&models.Credential{
		UserID:       userID,
		PasswordHash: string(passwordHash),
	})
}

// DeleteUser removes the user row and then the credential row as two
// independent writes. There is no transaction: a crash between the two can
// leave a dangling credential record.
func (service *IdentityService) DeleteUser(userID string) error {
	if err := service.users.Delete(userID); err != nil {
		return err
	}
	return service.users.DeleteCredential(userID)
}

func (service *IdentityService) DeleteUserByEmail(email string) error {
	return service.DeleteUser(models.UserKey(email).String())
}
