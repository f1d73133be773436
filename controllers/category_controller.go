package controllers

import (
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/middleware"
	"merchant-dashboard-backend/utils"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type CategoryController struct {
	Catalog *database.Catalog
}

func NewCategoryController(catalog *database.Catalog) *CategoryController {
	return &CategoryController{Catalog: catalog}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// GetCategories retrieves the categories of a store
// @Summary Get Store Categories
// @Description Retrieve the menu categories of a store in insertion order
// @Tags Categories
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} utils.SuccessTotaledResponse{data=[]models.Category}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id}/categories [get]
func (cc *CategoryController) GetCategories(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)
	categories := cc.Catalog.ListCategories(store.ID)

	return c.Status(fiber.StatusOK).JSON(utils.SuccessTotaledResponse{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
		Total:   len(categories),
	})
}

// CreateCategory adds a category to a store
// @Summary Create Store Category
// @Description Add a menu category to a store. Names need not be unique.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param request body CreateCategoryRequest true "Category details"
// @Success 201 {object} utils.SuccessResponse{data=models.Category}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id}/categories [post]
func (cc *CategoryController) CreateCategory(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)

	var req CreateCategoryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Category name is required",
		})
	}

	category := cc.Catalog.CreateCategory(store.ID, name)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}
