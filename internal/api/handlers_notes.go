package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/services"
)

func (handler *Handler) ListNotes(c *fiber.Ctx) error {
	mentee, _, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	notes, err := handler.mentees.GetNotesOfMentee(mentee.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}
	return c.JSON(notes)
}

func (handler *Handler) CreateNote(c *fiber.Ctx) error {
	mentee, user, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	content := strings.TrimSpace(input.Content)
	if content == "" || len(content) > maxNoteLength {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	note, err := handler.mentees.CreateNote(mentee.ID, user.ID, content)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (handler *Handler) UpdateNote(c *fiber.Ctx) error {
	mentee, user, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	note, err := handler.mentees.GetNote(mentee.ID, c.Params("noteID"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load note")
	}
	if note == nil {
		return apiError(c, fiber.StatusNotFound, "note not found")
	}
	if !services.CanUserMutateNote(user, note) {
		return apiDenied(c, services.Deny("You can only edit your own notes"))
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}
	content := strings.TrimSpace(input.Content)
	if content == "" || len(content) > maxNoteLength {
		return apiError(c, fiber.StatusBadRequest, minFieldsErrMsg)
	}

	updated, err := handler.mentees.UpdateNote(mentee.ID, note.ID, content)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return apiError(c, fiber.StatusNotFound, "note not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update note")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteNote(c *fiber.Ctx) error {
	mentee, user, err := handler.loadAccessibleMentee(c)
	if err != nil || mentee == nil {
		return err
	}

	note, err := handler.mentees.GetNote(mentee.ID, c.Params("noteID"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load note")
	}
	if note == nil {
		return apiError(c, fiber.StatusNotFound, "note not found")
	}
	if !services.CanUserMutateNote(user, note) {
		return apiDenied(c, services.Deny("You can only delete your own notes"))
	}

	if err := handler.mentees.DeleteNote(mentee.ID, note.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete note")
	}
	return c.JSON(fiber.Map{"ok": true})
}
