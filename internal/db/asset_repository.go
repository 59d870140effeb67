package db

import (
	"errors"

	"github.com/studentbridge/buddydesk/internal/models"
	"gorm.io/gorm"
)

type AssetRepository struct {
	database *gorm.DB
}

func NewAssetRepository(database *gorm.DB) *AssetRepository {
	return &AssetRepository{database: database}
}

func (repo *AssetRepository) Create(asset *models.Asset) error {
	return repo.database.Create(asset).Error
}

func (repo *AssetRepository) FindByID(assetID string) (*models.Asset, error) {
	var asset models.Asset
	err := repo.database.Where("id = ?", assetID).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (repo *AssetRepository) ListAll() ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (repo *AssetRepository) ListByOwner(ownerID string) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	if err := repo.database.Where("owner_id = ?", ownerID).Order("name ASC, id ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (repo *AssetRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Asset{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AssetRepository) Save(asset *models.Asset) error {
	return repo.database.Save(asset).Error
}

func (repo *AssetRepository) Delete(assetID string) error {
	return repo.database.Where("id = ?", assetID).Delete(&models.Asset{}).Error
}
