package controllers

import (
	"errors"
	"merchant-dashboard-backend/middleware"
	"merchant-dashboard-backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

type QRController struct{}

func NewQRController() *QRController {
	return &QRController{}
}

type QRLinkResponse struct {
	StoreID string `json:"storeId"`
	Payload string `json:"payload"`
	URL     string `json:"url"`
}

// GetStoreQR renders the storefront QR code
// @Summary Get Store QR Code
// @Description Render the storefront QR code as a PNG image
// @Tags QR Codes
// @Produce png
// @Param id path string true "Store ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id}/qr [get]
func (qc *QRController) GetStoreQR(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)

	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(utils.DefaultQRSize)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid size parameter",
		})
	}

	png, err := utils.GenerateStoreQR(store.ID, size)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidQRSize) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to generate QR code",
		})
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", `inline; filename="`+utils.GenerateSlug(store.Name)+`-qr.png"`)
	return c.Status(fiber.StatusOK).Send(png)
}

// GetStoreQRLink returns the QR payload and hosted image link of a store
// @Summary Get Store QR Link
// @Description Return the text encoded in the storefront QR code and a hosted image link
// @Tags QR Codes
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} utils.SuccessResponse{data=QRLinkResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/stores/{id}/qr-link [get]
func (qc *QRController) GetStoreQRLink(c fiber.Ctx) error {
	store, _ := middleware.CurrentStore(c)

	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "QR link generated successfully",
		Data: QRLinkResponse{
			StoreID: store.ID,
			Payload: utils.StoreQRPayload(store.ID),
			URL:     utils.StoreQRServiceURL(store.ID),
		},
	})
}
