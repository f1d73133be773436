package controllers

import (
	"errors"
	"fmt"
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/models"
	"merchant-dashboard-backend/utils"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Defaults applied to a new store when the form leaves a field out
const (
	defaultStoreLat    = 40.7128
	defaultStoreLng    = -74.0060
	defaultStoreRating = 5.0
	defaultStoreLogo   = "https://picsum.photos/100/100?random=99"
	defaultStoreCover  = "https://picsum.photos/800/400?random=99"
)

type StoreController struct {
	Catalog *database.Catalog
	Now     func() time.Time
}

func NewStoreController(catalog *database.Catalog) *StoreController {
	return &StoreController{Catalog: catalog, Now: time.Now}
}

// Request structs
type CreateStoreRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" validate:"required"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Logo       string   `json:"logo"`
	CoverImage string   `json:"coverImage"`
	IsOpen     *bool    `json:"isOpen"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Rating     *float64 `json:"rating"`
}

type UpdateStoreRequest struct {
	Name       string  `json:"name" validate:"required"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Logo       string  `json:"logo"`
	CoverImage string  `json:"coverImage"`
	IsOpen     bool    `json:"isOpen"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Rating     float64 `json:"rating"`
}

func validateStore(store models.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return errors.New("Store name is required")
	}
	if store.Rating < 0 || store.Rating > 5 {
		return errors.New("Rating must be between 0 and 5")
	}
	if err := utils.ValidateCoordinates(store.Lat, store.Lng); err != nil {
		return errors.New("Invalid store location: " + err.Error())
	}
	return nil
}

func storeMatches(store models.Store, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(store.Name), search) ||
		strings.Contains(strings.ToLower(store.City), search) ||
		strings.Contains(strings.ToLower(store.Address), search)
}

// GetStores retrieves all stores
// @Summary Get Stores
// @Description Retrieve all stores in insertion order, optionally searched and sorted by distance
// @Tags Stores
// @Accept json
// @Produce json
// @Param search query string false "Search term for store name, city or address"
// @Param lat query number false "Latitude to sort stores nearest first"
// @Param lng query number false "Longitude to sort stores nearest first"
// @Success 200 {object} utils.SuccessTotaledResponse{data=[]models.StoreResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/stores [get]
func (sc *StoreController) GetStores(c fiber.Ctx) error {
	stores := sc.Catalog.ListStores()
	var filters []string

	// Search condition if provided
	search := strings.TrimSpace(c.Query("search", ""))
	if search != "" {
		matched := stores[:0]
		for _, store := range stores {
			if storeMatches(store, search) {
				matched = append(matched, store)
			}
		}
		stores = matched
		filters = append(filters, "search: "+search)
	}

	// Nearest first when a position is given
	latParam, lngParam := c.Query("lat"), c.Query("lng")
	if latParam != "" || lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil || utils.ValidateCoordinates(lat, lng) != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Invalid lat/lng query parameters",
			})
		}
		sort.SliceStable(stores, func(i, j int) bool {
			return utils.CalculateDistance(lat, lng, stores[i].Lat, stores[i].Lng) <
				utils.CalculateDistance(lat, lng, stores[j].Lat, stores[j].Lng)
		})
		filters = append(filters, fmt.Sprintf("near: %s,%s", latParam, lngParam))
	}

	// Format response
	storeList := make([]models.StoreResponse, len(stores))
	for i, store := range stores {
		storeList[i] = *store.ToResponse()
	}

	// Build success message
	message := "Stores retrieved successfully"
	if len(filters) > 0 {
		message += fmt.Sprintf(" (filtered by %s)", strings.Join(filters, " | "))
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessTotaledResponse{
		Success: true,
		Message: message,
		Data:    storeList,
		Total:   len(storeList),
	})
}

// GetStore retrieves a single store by ID
// @Summary Get Store
// @Description Retrieve a single store by ID
// @Tags Stores
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} utils.SuccessResponse{data=models.StoreResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id} [get]
func (sc *StoreController) GetStore(c fiber.Ctx) error {
	id := c.Params("id")
	store, ok := sc.Catalog.GetStore(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Store with id " + id + " not found.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Store retrieved successfully",
		Data:    store.ToResponse(),
	})
}

// CreateStore creates a new store together with its default categories
// @Summary Create Store
// @Description Create a new store; the default menu categories are created with it
// @Tags Stores
// @Accept json
// @Produce json
// @Param store body CreateStoreRequest true "Store details"
// @Success 201 {object} utils.SuccessResponse{data=models.StoreResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/stores [post]
func (sc *StoreController) CreateStore(c fiber.Ctx) error {
	// Binding request body
	var req CreateStoreRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID != "" {
		if _, exists := sc.Catalog.GetStore(req.ID); exists {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Store with id " + req.ID + " already exists.",
			})
		}
	}

	newStore := models.Store{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		City:        req.City,
		Logo:        req.Logo,
		CoverImage:  req.CoverImage,
		IsOpen:      true,
		Lat:         defaultStoreLat,
		Lng:         defaultStoreLng,
		Rating:      defaultStoreRating,
		LastUpdated: sc.Now(),
	}
	if newStore.Logo == "" {
		newStore.Logo = defaultStoreLogo
	}
	if newStore.CoverImage == "" {
		newStore.CoverImage = defaultStoreCover
	}
	if req.IsOpen != nil {
		newStore.IsOpen = *req.IsOpen
	}
	if req.Lat != nil {
		newStore.Lat = *req.Lat
	}
	if req.Lng != nil {
		newStore.Lng = *req.Lng
	}
	if req.Rating != nil {
		newStore.Rating = *req.Rating
	}

	if err := validateStore(newStore); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	created := sc.Catalog.CreateStore(newStore)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Store created successfully",
		Data:    created.ToResponse(),
	})
}

// UpdateStore replaces an existing store by ID
// @Summary Update Store
// @Description Replace every field of an existing store by ID
// @Tags Stores
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param request body UpdateStoreRequest true "Updated store details"
// @Success 200 {object} utils.SuccessResponse{data=models.StoreResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id} [put]
func (sc *StoreController) UpdateStore(c fiber.Ctx) error {
	id := c.Params("id")

	// Binding request body
	var req UpdateStoreRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	store := models.Store{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		City:        req.City,
		Logo:        req.Logo,
		CoverImage:  req.CoverImage,
		IsOpen:      req.IsOpen,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Rating:      req.Rating,
		LastUpdated: sc.Now(),
	}
	if err := validateStore(store); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	updated, err := sc.Catalog.UpdateStore(store)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Store with id " + id + " not found.",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to update store",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Store updated successfully",
		Data:    updated.ToResponse(),
	})
}
