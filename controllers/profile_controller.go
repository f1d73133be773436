package controllers

import (
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/models"
	"merchant-dashboard-backend/utils"

	"github.com/gofiber/fiber/v3"
)

type ProfileController struct {
	Catalog *database.Catalog
}

func NewProfileController(catalog *database.Catalog) *ProfileController {
	return &ProfileController{Catalog: catalog}
}

// GetProfile retrieves the merchant profile
// @Summary Get Profile
// @Description Retrieve the merchant profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.MerchantProfile}
// @Router /api/profile [get]
func (pc *ProfileController) GetProfile(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    pc.Catalog.GetProfile(),
	})
}

// UpdateProfile merges the given fields into the merchant profile
// @Summary Update Profile
// @Description Merge the fields present in the body into the profile; absent fields keep their value
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdate true "Profile fields to change"
// @Success 200 {object} utils.SuccessResponse{data=models.MerchantProfile}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/profile [patch]
func (pc *ProfileController) UpdateProfile(c fiber.Ctx) error {
	var req models.ProfileUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Name != nil && *req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Name must not be empty",
		})
	}

	message := "Profile updated successfully"
	if req.IsEmpty() {
		message = "No profile changes"
	}

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: message,
		Data:    pc.Catalog.UpdateProfile(req),
	})
}
