package db

import (
	"errors"
	"strings"
	"time"

	"github.com/studentbridge/buddydesk/internal/models"
	"gorm.io/gorm"
)

type MenteeRepository struct {
	database *gorm.DB
}

func NewMenteeRepository(database *gorm.DB) *MenteeRepository {
	return &MenteeRepository{database: database}
}

func (repo *MenteeRepository) CreateMenteeRow(mentee models.Mentee) error {
	row := menteeRowFromModel(mentee)
	return repo.database.Create(&row).Error
}

// FindMenteeByID returns nil without an error when the partition has no
// mentee row.
func (repo *MenteeRepository) FindMenteeByID(menteeID string) (*models.Mentee, error) {
	key := models.MenteeKey(menteeID).String()
	var row MenteeRecord
	err := repo.database.Where("pk = ? AND sk = ?", key, key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	mentee := row.toMentee()
	return &mentee, nil
}

func (repo *MenteeRepository) ListAllMentees() ([]models.Mentee, error) {
	rows := make([]MenteeRecord, 0)
	if err := repo.database.
		Where("pk = sk").
		Order("created_at ASC, pk ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return menteesFromRows(rows), nil
}

// ListMenteesByBuddy queries the buddy secondary index.
func (repo *MenteeRepository) ListMenteesByBuddy(buddyID string) ([]models.Mentee, error) {
	rows := make([]MenteeRecord, 0)
	if err := repo.database.
		Where("pk = sk AND buddy_id = ?", buddyID).
		Order("created_at ASC, pk ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return menteesFromRows(rows), nil
}

func (repo *MenteeRepository) CountMenteesByBuddy(buddyID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&MenteeRecord{}).
		Where("pk = sk AND buddy_id = ?", buddyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountMenteesByEmail queries the email secondary index, case-normalized.
func (repo *MenteeRepository) CountMenteesByEmail(email string) (int64, error) {
	var count int64
	if err := repo.database.Model(&MenteeRecord{}).
		Where("pk = sk AND email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveMenteeRow replaces the whole mentee row while keeping its keys.
func (repo *MenteeRepository) SaveMenteeRow(mentee models.Mentee) error {
	row := menteeRowFromModel(mentee)
	now := time.Now()
	row.UpdatedAt = &now
	return repo.database.Save(&row).Error
}

// UpdateMenteeStatus is the sole partial-update path in the model.
func (repo *MenteeRepository) UpdateMenteeStatus(menteeID string, status models.MenteeStatus) error {
	key := models.MenteeKey(menteeID).String()
	return repo.database.Model(&MenteeRecord{}).
		Where("pk = ? AND sk = ?", key, key).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// DeleteMenteeRow removes only the mentee's own row; note rows are deleted
// individually by the caller. The steps are deliberately independent writes
// with no transaction, so a crash mid-delete can leave orphaned notes.
func (repo *MenteeRepository) DeleteMenteeRow(menteeID string) error {
	key := models.MenteeKey(menteeID).String()
	return repo.database.Where("pk = ? AND sk = ?", key, key).Delete(&MenteeRecord{}).Error
}

// LoadMenteePartition fetches a mentee together with all of its notes in a
// single range query over the partition.
func (repo *MenteeRepository) LoadMenteePartition(menteeID string) (*models.Mentee, []models.Note, error) {
	key := models.MenteeKey(menteeID).String()
	rows := make([]MenteeRecord, 0)
	if err := repo.database.
		Where("pk = ?", key).
		Order("sk ASC").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	var mentee *models.Mentee
	notes := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		if row.IsMenteeRow() {
			value := row.toMentee()
			mentee = &value
			continue
		}
		notes = append(notes, row.toNote())
	}
	return mentee, notes, nil
}

func (repo *MenteeRepository) CreateNoteRow(note models.Note) error {
	row := noteRowFromModel(note)
	return repo.database.Create(&row).Error
}

func (repo *MenteeRepository) FindNote(menteeID string, noteID string) (*models.Note, error) {
	var row MenteeRecord
	err := repo.database.
		Where("pk = ? AND sk = ?", models.MenteeKey(menteeID).String(), models.NoteKey(noteID).String()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	note := row.toNote()
	return &note, nil
}

// ListNotesOfMentee is a single range query over the mentee's partition,
// selecting by sort-key prefix.
func (repo *MenteeRepository) ListNotesOfMentee(menteeID string) ([]models.Note, error) {
	rows := make([]MenteeRecord, 0)
	if err := repo.database.
		Where("pk = ? AND sk LIKE ?", models.MenteeKey(menteeID).String(), models.NoteKeyPrefix()+"%").
		Order("created_at ASC, sk ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toNote())
	}
	return notes, nil
}

func (repo *MenteeRepository) UpdateNoteContent(menteeID string, noteID string, content string) error {
	return repo.database.Model(&MenteeRecord{}).
		Where("pk = ? AND sk = ?", models.MenteeKey(menteeID).String(), models.NoteKey(noteID).String()).
		Updates(map[string]any{
			"content":    content,
			"updated_at": time.Now(),
		}).Error
}

func (repo *MenteeRepository) DeleteNoteRow(menteeID string, noteID string) error {
	return repo.database.
		Where("pk = ? AND sk = ?", models.MenteeKey(menteeID).String(), models.NoteKey(noteID).String()).
		Delete(&MenteeRecord{}).Error
}

func menteesFromRows(rows []MenteeRecord) []models.Mentee {
	mentees := make([]models.Mentee, 0, len(rows))
	for _, row := range rows {
		mentees = append(mentees, row.toMentee())
	}
	return mentees
}
