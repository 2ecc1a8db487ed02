package models

import "gorm.io/gorm"

// Entry is an admin-managed file attachment record. FileURL is populated
// once the associated file has been written to storage.
type Entry struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
