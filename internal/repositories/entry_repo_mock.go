package repositories

import (
	"sync"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"

	"github.com/google/uuid"
)

// MockEntryRepository is an in-memory implementation of EntryRepository.
type MockEntryRepository struct {
	entries map[string]models.Entry
	mu      sync.RWMutex
}

// NewMockEntryRepository creates a new instance of MockEntryRepository.
func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]models.Entry),
	}
}

// GetAll returns all entries.
func (r *MockEntryRepository) GetAll() ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entryList = append(entryList, e)
	}
	return entryList, nil
}

// GetByID returns an entry by its ID.
func (r *MockEntryRepository) GetByID(id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, apperrors.NotFound("Entry not found")
	}
	return &entry, nil
}

// Create adds a new entry.
func (r *MockEntryRepository) Create(entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Update modifies an existing entry.
func (r *MockEntryRepository) Update(entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return apperrors.NotFound("Entry not found")
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Delete removes an entry by its ID.
func (r *MockEntryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return apperrors.NotFound("Entry not found")
	}
	delete(r.entries, id)
	return nil
}
