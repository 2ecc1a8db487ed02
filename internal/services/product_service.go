package services

import (
	"mymirro/internal/models"
	"mymirro/internal/repositories"
	"mymirro/pkg/logger"

	"go.uber.org/zap"
)

// CatalogPublisher publishes catalog change events for downstream consumers.
type CatalogPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched on the stored record.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	Price       *float64         `json:"price"`
	Images      *[]string        `json:"images"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"`
	Sizes       *[]string        `json:"sizes"`
	Colors      *[]string        `json:"colors"`
	Material    *string          `json:"material"`
	Gender      *string          `json:"gender"`
	Ratings     *float64         `json:"ratings"`
	Reviews     *[]models.Review `json:"reviews"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher CatalogPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case catalog events are skipped.
func NewProductService(repo repositories.ProductRepository, publisher CatalogPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and publishes a catalog event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product.ID)
	return nil
}

// UpdateProduct applies a partial merge of the supplied fields onto the
// stored record and returns the post-update record.
func (s *ProductService) UpdateProduct(id string, update *ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Brand != nil {
		product.Brand = *update.Brand
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Images != nil {
		product.Images = *update.Images
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Sizes != nil {
		product.Sizes = *update.Sizes
	}
	if update.Colors != nil {
		product.Colors = *update.Colors
	}
	if update.Material != nil {
		product.Material = *update.Material
	}
	if update.Gender != nil {
		product.Gender = *update.Gender
	}
	if update.Ratings != nil {
		product.Ratings = *update.Ratings
	}
	if update.Reviews != nil {
		product.Reviews = *update.Reviews
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish("product.updated", product.ID)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", id)
	return nil
}

// publish emits a catalog event. A publish failure is logged, never
// surfaced: the store write has already succeeded.
func (s *ProductService) publish(event, productID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCatalogEvent(event, map[string]interface{}{"product_id": productID}); err != nil {
		logger.Warn("failed to publish catalog event",
			zap.String("event", event),
			zap.String("product_id", productID),
			zap.Error(err))
	}
}
