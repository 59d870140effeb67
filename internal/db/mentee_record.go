package db

import (
	"time"

	"github.com/studentbridge/buddydesk/internal/models"
)

// MenteeRecord is the single-table row shape shared by mentee and note
// documents. A mentee row has pk == sk; a note row keeps the mentee's pk and
// a "Note#"-prefixed sk, so one range query over a partition returns the
// mentee together with all of its notes.
type MenteeRecord struct {
	PK string `gorm:"column:pk;primaryKey"`
	SK string `gorm:"column:sk;primaryKey"`

	// Mentee attributes (pk == sk rows).
	BuddyID        string `gorm:"index:idx_mentee_records_buddy_id"`
	CountryCode    string
	HomeUniversity string
	HostFaculty    string
	Email          string `gorm:"index:idx_mentee_records_email"`
	Gender         string
	Degree         string
	AgreementStart time.Time
	AgreementEnd   time.Time
	Status         string

	// Note attributes ("Note#" rows).
	Content  string
	AuthorID string

	CreatedAt time.Time
	// Auto-tracking is off: the column is only stamped by the explicit
	// update paths, so a freshly created row reads back with no value.
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (MenteeRecord) TableName() string { return "mentee_records" }

func (record MenteeRecord) IsMenteeRow() bool { return record.PK == record.SK }

func menteeRowFromModel(mentee models.Mentee) MenteeRecord {
	key := models.MenteeKey(mentee.ID).String()
	return MenteeRecord{
		PK:             key,
		SK:             key,
		BuddyID:        mentee.BuddyID,
		CountryCode:    mentee.CountryCode,
		HomeUniversity: mentee.HomeUniversity,
		HostFaculty:    mentee.HostFaculty,
		Email:          mentee.Email,
		Gender:         mentee.Gender,
		Degree:         mentee.Degree,
		AgreementStart: mentee.AgreementStart,
		AgreementEnd:   mentee.AgreementEnd,
		Status:         string(mentee.Status),
		CreatedAt:      mentee.CreatedAt,
	}
}

func (record MenteeRecord) toMentee() models.Mentee {
	key, err := models.ParseRecordKey(record.PK)
	menteeID := record.PK
	if err == nil {
		menteeID = key.ID
	}
	mentee := models.Mentee{
		ID:             menteeID,
		BuddyID:        record.BuddyID,
		CountryCode:    record.CountryCode,
		HomeUniversity: record.HomeUniversity,
		HostFaculty:    record.HostFaculty,
		Email:          record.Email,
		Gender:         record.Gender,
		Degree:         record.Degree,
		AgreementStart: record.AgreementStart,
		AgreementEnd:   record.AgreementEnd,
		Status:         models.MenteeStatus(record.Status),
		CreatedAt:      record.CreatedAt,
	}
	if record.UpdatedAt != nil {
		mentee.UpdatedAt = *record.UpdatedAt
	}
	return mentee
}

func noteRowFromModel(note models.Note) MenteeRecord {
	return MenteeRecord{
		PK:        models.MenteeKey(note.MenteeID).String(),
		SK:        models.NoteKey(note.ID).String(),
		Content:   note.Content,
		AuthorID:  note.AuthorID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (record MenteeRecord) toNote() models.Note {
	menteeID := record.PK
	if key, err := models.ParseRecordKey(record.PK); err == nil {
		menteeID = key.ID
	}
	noteID := record.SK
	if key, err := models.ParseRecordKey(record.SK); err == nil {
		noteID = key.ID
	}
	return models.Note{
		ID:        noteID,
		MenteeID:  menteeID,
		Content:   record.Content,
		AuthorID:  record.AuthorID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
