package middleware

import (
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/models"
	"merchant-dashboard-backend/utils"

	"github.com/gofiber/fiber/v3"
)

const storeLocalKey = "store"

// RequireStore resolves the :id path parameter to a store and rejects the
// request with 404 when it does not exist.
func RequireStore(catalog *database.Catalog) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Params("id")
		store, ok := catalog.GetStore(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Store with id " + id + " not found.",
			})
		}

		c.Locals(storeLocalKey, store)
		return c.Next()
	}
}

// CurrentStore returns the store resolved by RequireStore.
func CurrentStore(c fiber.Ctx) (models.Store, bool) {
	store, ok := c.Locals(storeLocalKey).(models.Store)
	return store, ok
}
