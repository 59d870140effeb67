package db

import (
	"errors"

	"github.com/studentbridge/buddydesk/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID returns nil without an error when no user exists under the key.
func (repo *UserRepository) FindByID(userID string) (*models.User, error) {
	var user models.User
	err := repo.database.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail resolves through the derived key, so id and email lookups can
// never disagree.
func (repo *UserRepository) FindByEmail(email string) (*models.User, error) {
	return repo.FindByID(models.UserKey(email).String())
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("last_name ASC, first_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// Save replaces the whole record.
func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) Delete(userID string) error {
	return repo.database.Where("id = ?", userID).Delete(&models.User{}).Error
}

func (repo *UserRepository) UpsertCredential(credential *models.Credential) error {
	return repo.database.Save(credential).Error
}

// FindCredential is the only read path for password hashes; the hash never
// travels further than the verify call in the identity service.
func (repo *UserRepository) FindCredential(userID string) (*models.Credential, error) {
	var credential models.Credential
	err := repo.database.Where("user_id = ?", userID).First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (repo *UserRepository) DeleteCredential(userID string) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Credential{}).Error
}
