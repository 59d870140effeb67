package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/models"
	"github.com/studentbridge/buddydesk/internal/security"
	"github.com/studentbridge/buddydesk/internal/services"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.identity.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(users)
}

// CreateUser provisions an account with a generated temporary password,
// returned exactly once in the response.
func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	input := userInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" || input.FirstName == "" || input.LastName == "" {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if anyFieldTooLong(email, input.FirstName, input.LastName, input.Faculty) {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if !input.Role.Valid() {
		return apiError(c, fiber.StatusBadRequest, "unknown role")
	}
	if input.Role.Above(actor.Role) {
		return apiDenied(c, services.Deny("You can not create a user with a role above your own"))
	}

	existing, err := handler.identity.GetUserByEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	if existing != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	temporaryPassword, err := security.TemporaryPassword()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	user, err := handler.identity.CreateUser(services.CreateUserInput{
		Email:          email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Faculty:        input.Faculty,
		Role:           input.Role,
		AgreementStart: input.AgreementStart,
		AgreementEnd:   input.AgreementEnd,
	}, temporaryPassword)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":              user,
		"temporaryPassword": temporaryPassword,
	})
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	email := c.Params("email")
	user, err := handler.identity.GetUserByEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if user == nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	// Buddies may only read their own record.
	if !actor.Role.Above(models.RoleBuddy) && actor.ID != user.ID {
		return apiDenied(c, services.Deny("You can only view your own profile"))
	}
	return c.JSON(user)
}

// UpdateUser replaces the profile fields wholesale. The email, and with it
// the derived id, is immutable.
func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := handler.identity.GetUserByEmail(c.Params("email"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if user == nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	input := userInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if !input.Role.Valid() {
		return apiError(c, fiber.StatusBadRequest, "unknown role")
	}
	if input.Role.Above(actor.Role) {
		return apiDenied(c, services.Deny("You can not promote a user above your own role"))
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Faculty = input.Faculty
	user.Role = input.Role
	user.AgreementStart = input.AgreementStart
	user.AgreementEnd = input.AgreementEnd

	if err := handler.identity.UpdateUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update user")
	}
	return c.JSON(user)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	target, err := handler.identity.GetUserByEmail(c.Params("email"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if target == nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	menteeCount, err := handler.repositories.Mentees.CountMenteesByBuddy(target.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	assetCount, err := handler.repositories.Assets.CountByOwner(target.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}

	decision := services.CanUserDeleteUser(actor, target, menteeCount, assetCount)
	if !decision.Allowed {
		return apiDenied(c, decision)
	}

	if err := handler.identity.DeleteUser(target.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	return c.JSON(fiber.Map{"ok": true})
}
