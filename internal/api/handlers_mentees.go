package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/models"
	"github.com/studentbridge/buddydesk/internal/services"
)

// ListMentees shows a buddy only their own mentees; every higher role sees
// the full list.
func (handler *Handler) ListMentees(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var (
		mentees []models.Mentee
		err     error
	)
	if services.CanUserMutateMentee(user) {
		mentees, err = handler.mentees.GetAllMentees()
	} else {
		mentees, err = handler.mentees.GetMenteeListItems(user.ID)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mentees")
	}
	return c.JSON(mentees)
}

func (handler *Handler) CreateMentee(c *fiber.Ctx) error {
	input := menteeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if input.BuddyID == "" || input.Email == "" {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if anyFieldTooLong(input.Email, input.CountryCode, input.HomeUniversity, input.HostFaculty) {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	buddy, err := handler.identity.GetUserByID(input.BuddyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create mentee")
	}
	if buddy == nil {
		return apiError(c, fiber.StatusBadRequest, "assigned buddy does not exist")
	}

	unique, err := handler.mentees.IsEmailUnique(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create mentee")
	}
	if !unique {
		return apiError(c, fiber.StatusConflict, "a mentee with this email already exists")
	}

	mentee, err := handler.mentees.CreateMentee(services.CreateMenteeInput{
		BuddyID:        input.BuddyID,
		CountryCode:    input.CountryCode,
		HomeUniversity: input.HomeUniversity,
		HostFaculty:    input.HostFaculty,
		Email:          input.Email,
		Gender:         input.Gender,
		Degree:         input.Degree,
		AgreementStart: input.AgreementStart,
		AgreementEnd:   input.AgreementEnd,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create mentee")
	}
	return c.Status(fiber.StatusCreated).JSON(mentee)
}

// loadAccessibleMentee resolves the path id and applies the read scope.
// Absence and lack of access are reported separately (404 vs 403) because
// mentee ids are opaque and carry no information.
func (handler *Handler) loadAccessibleMentee(c *fiber.Ctx) (*models.Mentee, *models.User, error) {
	user, ok := currentUser(c)
	if !ok {
		return nil, nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	mentee, err := handler.mentees.GetMenteeByID(c.Params("id"))
	if err != nil {
		return nil, nil, apiError(c, fiber.StatusInternalServerError, "failed to load mentee")
	}
	if mentee == nil {
		return nil, nil, apiError(c, fiber.StatusNotFound, "mentee not found")
	}
	if !services.CanUserAccessMentee(user, mentee) {
		return nil, nil, apiDenied(c, services.Deny("You are not assigned to this mentee"))
	}
	return mentee, user, nil
}

func (handler *Handler) GetMentee(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}
	return c.JSON(mentee)
}

func (handler *Handler) GetMenteeWithNotes(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	loaded, notes, err := handler.mentees.GetMenteeWithNotes(mentee.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mentee")
	}
	if loaded == nil {
		return apiError(c, fiber.StatusNotFound, "mentee not found")
	}
	return c.JSON(fiber.Map{"mentee": loaded, "notes": notes})
}

func (handler *Handler) UpdateMentee(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	input := menteeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if input.BuddyID == "" || input.Email == "" {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if anyFieldTooLong(input.Email, input.CountryCode, input.HomeUniversity, input.HostFaculty) {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	if input.Status != "" && !input.Status.Valid() {
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}

	buddy, err := handler.identity.GetUserByID(input.BuddyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update mentee")
	}
	if buddy == nil {
		return apiError(c, fiber.StatusBadRequest, "assigned buddy does not exist")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != mentee.Email {
		unique, err := handler.mentees.IsEmailUnique(email)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update mentee")
		}
		if !unique {
			return apiError(c, fiber.StatusConflict, "a mentee with this email already exists")
		}
	}

	updated := *mentee
	updated.BuddyID = input.BuddyID
	updated.CountryCode = input.CountryCode
	updated.HomeUniversity = input.HomeUniversity
	updated.HostFaculty = input.HostFaculty
	updated.Email = email
	updated.Gender = input.Gender
	updated.Degree = input.Degree
	updated.AgreementStart = input.AgreementStart
	updated.AgreementEnd = input.AgreementEnd
	if input.Status != "" {
		updated.Status = input.Status
	}

	if err := handler.mentees.UpdateMentee(updated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update mentee")
	}
	return c.JSON(updated)
}

// UpdateMenteeStatus is open to the assigned buddy as well as privileged
// roles; any of the eight statuses may be set.
func (handler *Handler) UpdateMenteeStatus(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	input := statusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	if err := handler.mentees.UpdateMenteeStatus(mentee.ID, input.Status); err != nil {
		if errors.Is(err, services.ErrStatusInvalid) {
			return apiError(c, fiber.StatusBadRequest, "unknown status")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update status")
	}
	return c.JSON(fiber.Map{"ok": true, "status": input.Status})
}

func (handler *Handler) DeleteMentee(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	if err := handler.mentees.DeleteMentee(mentee.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete mentee")
	}
	return c.JSON(fiber.Map{"ok": true})
}
