package models

import "gorm.io/gorm"

// Review is a single customer review embedded in a product.
type Review struct {
	UserID  string  `json:"user"`
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`
}

// Product represents a catalog item. Image URLs, sizes, colors and reviews
// are stored as JSON columns; at least one image is required at creation.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=Shoes Clothing Accessories"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" gorm:"serializer:json" validate:"required,min=1"`
	Description string   `json:"description" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes" gorm:"serializer:json"`
	Colors      []string `json:"colors" gorm:"serializer:json"`
	Material    string   `json:"material"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=Men Women Unisex"`
	Ratings     float64  `json:"ratings"`
	Reviews     []Review `json:"reviews" gorm:"serializer:json"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
