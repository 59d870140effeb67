package models

import "time"

// User is addressed by the derived key "User#<lowercased email>" so that an
// email lookup and an id lookup always resolve to the same record.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string    `gorm:"not null" json:"firstName"`
	LastName       string    `gorm:"not null" json:"lastName"`
	Faculty        string    `json:"faculty"`
	Role           Role      `gorm:"not null;default:0" json:"role"`
	AgreementStart time.Time `json:"agreementStartDate"`
	AgreementEnd   time.Time `json:"agreementEndDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Credential keeps the salted password hash in its own record, keyed by the
// owning user's id. It is never serialized in a response.
type Credential struct {
	UserID       string `gorm:"primaryKey" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (Credential) TableName() string { return "passwords" }
