package repositories

import (
	"errors"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEntryRepository is a GORM implementation of EntryRepository.
type GORMEntryRepository struct {
	db *gorm.DB
}

// NewGORMEntryRepository creates a new instance of GORMEntryRepository.
func NewGORMEntryRepository(db *gorm.DB) *GORMEntryRepository {
	return &GORMEntryRepository{
		db: db,
	}
}

// GetAll retrieves all entries.
func (r *GORMEntryRepository) GetAll() ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return entries, nil
}

// GetByID retrieves a single entry by its ID.
func (r *GORMEntryRepository) GetByID(id string) (*models.Entry, error) {
	var entry models.Entry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Entry not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &entry, nil
}

// Create inserts a new entry.
func (r *GORMEntryRepository) Create(entry *models.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Update saves an existing entry.
func (r *GORMEntryRepository) Update(entry *models.Entry) error {
	res := r.db.Save(entry)
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Entry not found")
	}
	return nil
}

// Delete removes an entry by its ID.
func (r *GORMEntryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Entry{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Entry not found")
	}
	return nil
}
