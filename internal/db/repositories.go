package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Mentees *MenteeRepository
	Assets  *AssetRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Mentees: NewMenteeRepository(database),
		Assets:  NewAssetRepository(database),
	}
}
