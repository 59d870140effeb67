package models

import "time"

// Asset is an item of section property (keys, radios, merch stock) signed
// out to a user. A user owning assets cannot be deleted.
type Asset struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `json:"category"`
	SerialNumber string    `json:"serialNumber"`
	OwnerID      string    `gorm:"index;not null" json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Asset) TableName() string { return "assets" }
