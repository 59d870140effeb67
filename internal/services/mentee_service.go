package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studentbridge/buddydesk/internal/models"
)

var (
	ErrStatusInvalid = errors.New("unknown mentee status")
	ErrNoteNotFound  = errors.New("note not found")
)

type MenteeRepository interface {
	CreateMenteeRow(mentee models.Mentee) error
	FindMenteeByID(menteeID string) (*models.Mentee, error)
	ListAllMentees() ([]models.Mentee, error)
	ListMenteesByBuddy(buddyID string) ([]models.Mentee, error)
	CountMenteesByBuddy(buddyID string) (int64, error)
	CountMenteesByEmail(email string) (int64, error)
	SaveMenteeRow(mentee models.Mentee) error
	UpdateMenteeStatus(menteeID string, status models.MenteeStatus) error
	DeleteMenteeRow(menteeID string) error
	LoadMenteePartition(menteeID string) (*models.Mentee, []models.Note, error)
	CreateNoteRow(note models.Note) error
	FindNote(menteeID string, noteID string) (*models.Note, error)
	ListNotesOfMentee(menteeID string) ([]models.Note, error)
	UpdateNoteContent(menteeID string, noteID string, content string) error
	DeleteNoteRow(menteeID string, noteID string) error
}

type MenteeService struct {
	mentees MenteeRepository
}

func NewMenteeService(mentees MenteeRepository) *MenteeService {
	return &MenteeService{mentees: mentees}
}

type CreateMenteeInput struct {
	BuddyID        string
	CountryCode    string
	HomeUniversity string
	HostFaculty    string
	Email          string
	Gender         string
	Degree         string
	AgreementStart time.Time
	AgreementEnd   time.Time
}

// CreateMentee assigns a fresh opaque id and always starts the lifecycle at
// "assigned", whatever the caller tried to pass along.
func (service *MenteeService) CreateMentee(input CreateMenteeInput) (*models.Mentee, error) {
	mentee := models.Mentee{
		ID:             uuid.NewString(),
		BuddyID:        input.BuddyID,
		CountryCode:    input.CountryCode,
		HomeUniversity: input.HomeUniversity,
		HostFaculty:    input.HostFaculty,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Gender:         input.Gender,
		Degree:         input.Degree,
		AgreementStart: input.AgreementStart,
		AgreementEnd:   input.AgreementEnd,
		Status:         models.StatusAssigned,
		CreatedAt:      time.Now(),
	}
	if err := service.mentees.CreateMenteeRow(mentee); err != nil {
		return nil, err
	}

	created, err := service.mentees.FindMenteeByID(mentee.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrStoreInconsistent
	}
	return created, nil
}

func (service *MenteeService) GetMenteeByID(menteeID string) (*models.Mentee, error) {
	return service.mentees.FindMenteeByID(menteeID)
}

// GetMenteeWithNotes returns the mentee and its notes from one partition
// range query.
func (service *MenteeService) GetMenteeWithNotes(menteeID string) (*models.Mentee, []models.Note, error) {
	return service.mentees.LoadMenteePartition(menteeID)
}

func (service *MenteeService) GetAllMentees() ([]models.Mentee, error) {
	return service.mentees.ListAllMentees()
}

func (service *MenteeService) GetMenteeListItems(buddyID string) ([]models.Mentee, error) {
	return service.mentees.ListMenteesByBuddy(buddyID)
}

func (service *MenteeService) GetMenteeCount(buddyID string) (int64, error) {
	return service.mentees.CountMenteesByBuddy(buddyID)
}

// IsEmailUnique reports true iff no mentee carries the case-normalized
// email. It is a check, not a storage-level constraint.
func (service *MenteeService) IsEmailUnique(email string) (bool, error) {
	count, err := service.mentees.CountMenteesByEmail(email)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// UpdateMentee replaces the whole record, preserving the identifier and key
// structure.
func (service *MenteeService) UpdateMentee(mentee models.Mentee) error {
	mentee.Email = strings.ToLower(strings.TrimSpace(mentee.Email))
	return service.mentees.SaveMenteeRow(mentee)
}

func (service *MenteeService) UpdateMenteeStatus(menteeID string, status models.MenteeStatus) error {
	if !status.Valid() {
		return ErrStatusInvalid
	}
	return service.mentees.UpdateMenteeStatus(menteeID, status)
}

// DeleteMentee cascades over the mentee's notes. Each delete is an
// independent write with no transaction or rollback; a crash mid-way can
// leave orphaned note rows.
func (service *MenteeService) DeleteMentee(menteeID string) error {
	notes, err := service.mentees.ListNotesOfMentee(menteeID)
	if err != nil {
		return err
	}

	if err := service.mentees.DeleteMenteeRow(menteeID); err != nil {
		return err
	}
	for _, note := range notes {
		if err := service.mentees.DeleteNoteRow(menteeID, note.ID); err != nil {
			return err
		}
	}
	return nil
}

func (service *MenteeService) CreateNote(menteeID string, authorID string, content string) (*models.Note, error) {
	note := models.Note{
		ID:        uuid.NewString(),
		MenteeID:  menteeID,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := service.mentees.CreateNoteRow(note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (service *MenteeService) GetNote(menteeID string, noteID string) (*models.Note, error) {
	return service.mentees.FindNote(menteeID, noteID)
}

func (service *MenteeService) GetNotesOfMentee(menteeID string) ([]models.Note, error) {
	return service.mentees.ListNotesOfMentee(menteeID)
}

// UpdateNote rewrites the content and always stamps the update timestamp.
func (service *MenteeService) UpdateNote(menteeID string, noteID string, content string) (*models.Note, error) {
	existing, err := service.mentees.FindNote(menteeID, noteID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNoteNotFound
	}
	if err := service.mentees.UpdateNoteContent(menteeID, noteID, content); err != nil {
		return nil, err
	}
	return service.mentees.FindNote(menteeID, noteID)
}

func (service *MenteeService) DeleteNote(menteeID string, noteID string) error {
	return service.mentees.DeleteNoteRow(menteeID, noteID)
}
