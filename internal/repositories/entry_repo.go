package repositories

import "mymirro/internal/models"

// EntryRepository defines the interface for entry data access.
type EntryRepository interface {
	GetAll() ([]models.Entry, error)
	GetByID(id string) (*models.Entry, error)
	Create(entry *models.Entry) error
	Update(entry *models.Entry) error
	Delete(id string) error
}
