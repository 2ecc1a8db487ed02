package services

import (
	"mymirro/internal/models"
	"mymirro/internal/repositories"
)

// EntryUpdate carries the fields of a partial entry update. Nil fields are
// left untouched on the stored record.
type EntryUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
}

// EntryService handles business logic for admin-managed file entries.
type EntryService struct {
	repo repositories.EntryRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(repo repositories.EntryRepository) *EntryService {
	return &EntryService{
		repo: repo,
	}
}

// GetAllEntries retrieves all entries.
func (s *EntryService) GetAllEntries() ([]models.Entry, error) {
	return s.repo.GetAll()
}

// GetEntryByID retrieves a single entry by its ID.
func (s *EntryService) GetEntryByID(id string) (*models.Entry, error) {
	return s.repo.GetByID(id)
}

// CreateEntry persists a new entry.
func (s *EntryService) CreateEntry(entry *models.Entry) error {
	return s.repo.Create(entry)
}

// UpdateEntry applies a partial merge of the supplied fields onto the stored
// record and returns the post-update record.
func (s *EntryService) UpdateEntry(id string, update *EntryUpdate) (*models.Entry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		entry.Title = *update.Title
	}
	if update.Description != nil {
		entry.Description = *update.Description
	}
	if update.FileURL != nil {
		entry.FileURL = *update.FileURL
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry by its ID.
func (s *EntryService) DeleteEntry(id string) error {
	return s.repo.Delete(id)
}
