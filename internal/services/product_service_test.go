package services_test

import (
	"net/http"
	"testing"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/repositories"
	"mymirro/internal/services"

	"github.com/stretchr/testify/assert"
)

// recordingPublisher collects published catalog events.
type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) PublishCatalogEvent(event string, _ map[string]interface{}) error {
	p.events = append(p.events, event)
	return nil
}

func newProduct() *models.Product {
	return &models.Product{
		Name:        "Runner Pro",
		Brand:       "Acme",
		Category:    "Shoes",
		Price:       89.99,
		Images:      []string{"u1.jpg"},
		Description: "Lightweight running shoe",
		Sizes:       []string{"42", "43"},
		Colors:      []string{"black"},
		Gender:      "Unisex",
	}
}

func TestProductService_CreateAndGet(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	publisher := &recordingPublisher{}
	svc := services.NewProductService(repo, publisher)

	product := newProduct()
	err := svc.CreateProduct(product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, []string{"product.created"}, publisher.events)

	got, err := svc.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Runner Pro", got.Name)
	assert.Equal(t, 0, got.Stock)

	all, err := svc.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProductService_PartialUpdate(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	product := newProduct()
	assert.NoError(t, svc.CreateProduct(product))

	newPrice := 74.99
	newStock := 12
	updated, err := svc.UpdateProduct(product.ID, &services.ProductUpdate{
		Price: &newPrice,
		Stock: &newStock,
	})
	assert.NoError(t, err)

	// Only the supplied fields change.
	assert.Equal(t, 74.99, updated.Price)
	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, "Runner Pro", updated.Name)
	assert.Equal(t, []string{"u1.jpg"}, updated.Images)
	assert.Equal(t, "Acme", updated.Brand)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	name := "Ghost"
	_, err := svc.UpdateProduct("missing-id", &services.ProductUpdate{Name: &name})
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestProductService_Delete(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	publisher := &recordingPublisher{}
	svc := services.NewProductService(repo, publisher)

	product := newProduct()
	assert.NoError(t, svc.CreateProduct(product))

	assert.NoError(t, svc.DeleteProduct(product.ID))
	assert.Equal(t, []string{"product.created", "product.deleted"}, publisher.events)

	_, err := svc.GetProductByID(product.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))

	// Deleting a missing id is a 404, not a 500.
	err = svc.DeleteProduct(product.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestProductService_NilPublisher(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewProductService(repo, nil)

	// Mutations succeed without a publisher wired.
	product := newProduct()
	assert.NoError(t, svc.CreateProduct(product))
	assert.NoError(t, svc.DeleteProduct(product.ID))
}
