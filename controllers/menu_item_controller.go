package controllers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/middleware"
	"merchant-dashboard-backend/models"
	"merchant-dashboard-backend/utils"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Used when a store has no categories yet
const fallbackCategory = "Mains"

type MenuItemController struct {
	Catalog *database.Catalog
}

func NewMenuItemController(catalog *database.Catalog) *MenuItemController {
	return &MenuItemController{Catalog: catalog}
}

// Request structs
type CreateMenuItemRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" validate:"gte=0"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	InStock     *bool           `json:"inStock"`
	ItemType    models.ItemType `json:"itemType"`
}

type UpdateMenuItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" validate:"gte=0"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	InStock     bool            `json:"inStock"`
	ItemType    models.ItemType `json:"itemType"`
}

func validateMenuItem(item models.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("Item name is required")
	}
	if item.Price < 0 {
		return errors.New("Price must not be negative")
	}
	return nil
}

func placeholderItemImage() string {
	return fmt.Sprintf("https://picsum.photos/200/200?random=%d", rand.IntN(100))
}

// GetItems retrieves the menu items of a store
// @Summary Get Store Menu Items
// @Description Retrieve the menu items of a store, optionally limited to one category
// @Tags Menu Items
// @Produce json
// @Param id path string true "Store ID"
// @Param category query string false "Category name, All for every item"
// @Success 200 {object} utils.SuccessTotaledResponse{data=[]models.MenuItem}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id}/items [get]
func (mc *MenuItemController) GetItems(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)
	items := mc.Catalog.ListItems(store.ID)

	message := "Menu items retrieved successfully"
	category := strings.TrimSpace(c.Query("category", ""))
	if category != "" && category != "All" {
		filtered := items[:0]
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
		message += " (filtered by category: " + category + ")"
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessTotaledResponse{
		Success: true,
		Message: message,
		Data:    items,
		Total:   len(items),
	})
}

// CreateItem adds a menu item to a store
// @Summary Create Menu Item
// @Description Add a menu item to a store
// @Tags Menu Items
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param request body CreateMenuItemRequest true "Menu item details"
// @Success 201 {object} utils.SuccessResponse{data=models.MenuItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/stores/{id}/items [post]
func (mc *MenuItemController) CreateItem(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)

	// Binding request body
	var req CreateMenuItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID != "" {
		if _, exists := mc.Catalog.GetItem(req.ID); exists {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Menu item with id " + req.ID + " already exists.",
			})
		}
	}

	item := models.MenuItem{
		ID:          req.ID,
		StoreID:     store.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Image:       req.Image,
		InStock:     true,
		ItemType:    req.ItemType,
	}
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	if item.Category == "" {
		item.Category = fallbackCategory
		if categories := mc.Catalog.ListCategories(store.ID); len(categories) > 0 {
			item.Category = categories[0].Name
		}
	}
	if item.Image == "" {
		item.Image = placeholderItemImage()
	}

	if err := validateMenuItem(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	created := mc.Catalog.CreateItem(item)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Menu item created successfully",
		Data:    created,
	})
}

// UpdateItem replaces an existing menu item by ID
// @Summary Update Menu Item
// @Description Replace every field of a menu item. The owning store never changes.
// @Tags Menu Items
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body UpdateMenuItemRequest true "Updated menu item"
// @Success 200 {object} utils.SuccessResponse{data=models.MenuItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/items/{id} [put]
func (mc *MenuItemController) UpdateItem(c fiber.Ctx) error {
	id := c.Params("id")
	existing, ok := mc.Catalog.GetItem(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Menu item with id " + id + " not found.",
		})
	}

	// Binding request body
	var req UpdateMenuItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	item := models.MenuItem{
		ID:          id,
		StoreID:     existing.StoreID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Image:       req.Image,
		InStock:     req.InStock,
		ItemType:    req.ItemType,
	}
	if err := validateMenuItem(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	updated, err := mc.Catalog.UpdateItem(item)
	if errors.Is(err, database.ErrNotFound) {
		// Deleted between the lookup and the update
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Menu item with id " + id + " not found.",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to update menu item",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Menu item updated successfully",
		Data:    updated,
	})
}

// DeleteItem deletes a menu item by ID
// @Summary Delete Menu Item
// @Description Delete a menu item by ID
// @Tags Menu Items
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/items/{id} [delete]
func (mc *MenuItemController) DeleteItem(c fiber.Ctx) error {
	id := c.Params("id")
	if err := mc.Catalog.DeleteItem(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Menu item with id " + id + " not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to delete menu item",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Menu item deleted successfully",
	})
}
