package handlers

import (
	"mymirro/internal/apperrors"
	"mymirro/internal/middleware"
	"mymirro/internal/models"
	"mymirro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public, writes are
// admin-only.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin), h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin), h.HandleUpdateProduct)
	productRoutes.Delete("/:id", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin), h.HandleDeleteProduct)
}

// HandleCreateProduct adds a catalog item. At least one image URL is
// required.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	if err := h.validate.Struct(product); err != nil {
		return failValidation(c, err)
	}

	if err := h.productService.CreateProduct(&product); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

// HandleGetProducts lists the whole catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// HandleGetProductByID fetches a single catalog item.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdateProduct applies a partial update and returns the updated
// record.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var update services.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	product, err := h.productService.UpdateProduct(c.Params("id"), &update)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct removes a catalog item.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}
