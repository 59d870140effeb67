package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/models"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.RequireRole(models.RoleHR), handler.ListUsers)
	users.Post("", handler.RequireRole(models.RoleHR), handler.CreateUser)
	users.Get("/:email", handler.GetUser)
	users.Put("/:email", handler.RequireRole(models.RoleHR), handler.UpdateUser)
	users.Delete("/:email", handler.DeleteUser)

	mentees := api.Group("/mentees", handler.AuthRequired)
	mentees.Get("", handler.ListMentees)
	mentees.Post("", handler.RequireRole(models.RoleHR), handler.CreateMentee)
	mentees.Get("/:id", handler.GetMentee)
	mentees.Get("/:id/with-notes", handler.GetMenteeWithNotes)
	mentees.Put("/:id", handler.RequireRole(models.RoleHR), handler.UpdateMentee)
	mentees.Patch("/:id/status", handler.UpdateMenteeStatus)
	mentees.Delete("/:id", handler.RequireRole(models.RoleHR), handler.DeleteMentee)

	mentees.Get("/:id/notes", handler.ListNotes)
	mentees.Post("/:id/notes", handler.CreateNote)
	mentees.Put("/:id/notes/:noteID", handler.UpdateNote)
	mentees.Delete("/:id/notes/:noteID", handler.DeleteNote)

	assets := api.Group("/assets", handler.AuthRequired, handler.RequireRole(models.RoleHR))
	assets.Get("", handler.ListAssets)
	assets.Post("", handler.CreateAsset)
	assets.Get("/:id", handler.GetAsset)
	assets.Put("/:id", handler.UpdateAsset)
	assets.Delete("/:id", handler.DeleteAsset)
}
