package api

import (
	"time"

	"github.com/studentbridge/buddydesk/internal/db"
	"github.com/studentbridge/buddydesk/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName  = "buddydesk_session"
	contextUserKey  = "currentUser"
	authTokenTTL    = 7 * 24 * time.Hour
	maxNoteLength   = 4000
	maxFieldLength  = 256
	minFieldsErrMsg = "invalid input"
)

type Handler struct {
	database     *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories *db.Repositories
	identity     *services.IdentityService
	mentees      *services.MenteeService
}

// NewHandler wires every dependency up front; the *gorm.DB handle is owned
// by the process entry point and injected here.
func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		database:     database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		repositories: repositories,
		identity:     services.NewIdentityService(repositories.Users),
		mentees:      services.NewMenteeService(repositories.Mentees),
	}
}
