package controllers

import (
	"merchant-dashboard-backend/utils"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type SuggestionController struct {
	Suggester *utils.Suggester
}

func NewSuggestionController(suggester *utils.Suggester) *SuggestionController {
	return &SuggestionController{Suggester: suggester}
}

type DescriptionSuggestionRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

type PriceSuggestionRequest struct {
	Name string `json:"name" validate:"required"`
}

// SuggestDescription writes a menu description for an item
// @Summary Suggest Menu Description
// @Description Generate a short description for a menu item; a fixed text is returned when generation is unavailable
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body DescriptionSuggestionRequest true "Item name and category"
// @Success 200 {object} utils.SuggestionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/suggestions/description [post]
func (sc *SuggestionController) SuggestDescription(c fiber.Ctx) error {
	var req DescriptionSuggestionRequest
	if err := c.Bind().JSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Item name is required",
		})
	}

	description := sc.Suggester.GenerateMenuDescription(c.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Category))

	return c.Status(fiber.StatusOK).JSON(utils.SuggestionResponse{
		Success:    true,
		Suggestion: description,
	})
}

// SuggestPrice proposes a price for an item
// @Summary Suggest Menu Price
// @Description Suggest a USD price as a numeric string; empty when no suggestion is available
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body PriceSuggestionRequest true "Item name"
// @Success 200 {object} utils.SuggestionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/suggestions/price [post]
func (sc *SuggestionController) SuggestPrice(c fiber.Ctx) error {
	var req PriceSuggestionRequest
	if err := c.Bind().JSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Item name is required",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuggestionResponse{
		Success:    true,
		Suggestion: sc.Suggester.SuggestPrice(c.Context(), strings.TrimSpace(req.Name)),
	})
}
