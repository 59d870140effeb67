package api

import (
	"time"

	"github.com/studentbridge/buddydesk/internal/models"
)

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type userInput struct {
	Email          string      `json:"email"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Faculty        string      `json:"faculty"`
	Role           models.Role `json:"role"`
	AgreementStart time.Time   `json:"agreementStartDate"`
	AgreementEnd   time.Time   `json:"agreementEndDate"`
}

type menteeInput struct {
	BuddyID        string    `json:"buddyId"`
	CountryCode    string    `json:"countryCode"`
	HomeUniversity string    `json:"homeUniversity"`
	HostFaculty    string    `json:"hostFaculty"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender"`
	Degree         string    `json:"degree"`
	AgreementStart time.Time `json:"agreementStartDate"`
	AgreementEnd   time.Time `json:"agreementEndDate"`
	// Status is accepted on update only; creation always starts at
	// "assigned".
	Status models.MenteeStatus `json:"status"`
}

type statusInput struct {
	Status models.MenteeStatus `json:"status" form:"status"`
}

type noteInput struct {
	Content string `json:"content" form:"content"`
}

type assetInput struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	SerialNumber string `json:"serialNumber"`
	OwnerEmail   string `json:"ownerEmail"`
}
