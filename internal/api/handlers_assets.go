package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studentbridge/buddydesk/internal/models"
)

func (handler *Handler) ListAssets(c *fiber.Ctx) error {
	ownerEmail := strings.TrimSpace(c.Query("owner"))
	if ownerEmail != "" {
		assets, err := handler.repositories.Assets.ListByOwner(models.UserKey(ownerEmail).String())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load assets")
		}
		return c.JSON(assets)
	}

	assets, err := handler.repositories.Assets.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assets")
	}
	return c.JSON(assets)
}

func (handler *Handler) CreateAsset(c *fiber.Ctx) error {
	input := assetInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.OwnerEmail) == "" {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	owner, err := handler.identity.GetUserByEmail(input.OwnerEmail)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create asset")
	}
	if owner == nil {
		return apiError(c, fiber.StatusBadRequest, "asset owner does not exist")
	}

	asset := models.Asset{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Category:     input.Category,
		SerialNumber: input.SerialNumber,
		OwnerID:      owner.ID,
		CreatedAt:    time.Now(),
	}
	if err := handler.repositories.Assets.Create(&asset); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create asset")
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

func (handler *Handler) GetAsset(c *fiber.Ctx) error {
	asset, err := handler.repositories.Assets.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load asset")
	}
	if asset == nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}
	return c.JSON(asset)
}

func (handler *Handler) UpdateAsset(c *fiber.Ctx) error {
	asset, err := handler.repositories.Assets.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load asset")
	}
	if asset == nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}

	input := assetInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	if ownerEmail := strings.TrimSpace(input.OwnerEmail); ownerEmail != "" {
		owner, err := handler.identity.GetUserByEmail(ownerEmail)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update asset")
		}
		if owner == nil {
			return apiError(c, fiber.StatusBadRequest, "asset owner does not exist")
		}
		asset.OwnerID = owner.ID
	}

	asset.Name = strings.TrimSpace(input.Name)
	asset.Category = input.Category
	asset.SerialNumber = input.SerialNumber

	if err := handler.repositories.Assets.Save(asset); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update asset")
	}
	return c.JSON(asset)
}

func (handler *Handler) DeleteAsset(c *fiber.Ctx) error {
	asset, err := handler.repositories.Assets.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load asset")
	}
	if asset == nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}

	if err := handler.repositories.Assets.Delete(asset.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete asset")
	}
	return c.JSON(fiber.Map{"ok": true})
}
