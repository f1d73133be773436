package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"merchant-dashboard-backend/config"
	"merchant-dashboard-backend/database"
	_ "merchant-dashboard-backend/docs"
	"merchant-dashboard-backend/models"
	"merchant-dashboard-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
}

func (s stubGenerator) GenerateText(context.Context, string) (string, error) {
	return s.text, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
}

func setup(t *testing.T, suggester *utils.Suggester) (*fiber.App, *database.Catalog) {
	t.Helper()
	catalog := database.NewCatalog(database.DefaultSeed(time.Now()))
	app := fiber.New()
	SetupRoutes(app, &config.Config{AppName: "test"}, catalog, suggester)
	return app, catalog
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func TestHealth(t *testing.T) {
	app, _ := setup(t, utils.NewSuggester(nil, 0, nil))
	resp, _ := do(t, app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocs(t *testing.T) {
	app, _ := setup(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/api/stores/{id}/items")
}

func TestStores_ListAndGet(t *testing.T) {
	app, _ := setup(t, nil)

	resp, env := do(t, app, http.MethodGet, "/api/stores", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, env.Total)

	var stores []models.StoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	assert.Equal(t, "store-1", stores[0].ID)

	resp, env = do(t, app, http.MethodGet, "/api/stores?search=burger", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.Total)
	assert.Contains(t, env.Message, "search: burger")

	// Times Square is closer to store-2
	resp, env = do(t, app, http.MethodGet, "/api/stores?lat=40.758&lng=-73.9855", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	assert.Equal(t, "store-2", stores[0].ID)

	resp, _ = do(t, app, http.MethodGet, "/api/stores?lat=abc&lng=1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/stores/store-2", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = do(t, app, http.MethodGet, "/api/stores/ghost", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestStores_CreateSeedsCategories(t *testing.T) {
	app, catalog := setup(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/stores", `{"id":"s9","name":"Test Cafe","city":"Austin, TX"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.StoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "s9", created.ID)
	assert.True(t, created.IsOpen)
	assert.Equal(t, 5.0, created.Rating)

	store, ok := catalog.GetStore("s9")
	require.True(t, ok)
	assert.False(t, store.LastUpdated.IsZero())

	resp, env = do(t, app, http.MethodGet, "/api/stores/s9/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, env.Total)

	resp, _ = do(t, app, http.MethodPost, "/api/stores", `{"id":"s9","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores", `{"name":"Bad","rating":7}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStores_Update(t *testing.T) {
	app, catalog := setup(t, nil)

	resp, _ := do(t, app, http.MethodPut, "/api/stores/store-2", `{"name":"Burger Palace","city":"Boston, MA","isOpen":true,"lat":42.36,"lng":-71.06,"rating":4}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	store, _ := catalog.GetStore("store-2")
	assert.Equal(t, "Burger Palace", store.Name)
	assert.Empty(t, store.Address)
	assert.True(t, store.IsOpen)

	resp, _ = do(t, app, http.MethodPut, "/api/stores/ghost", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategories(t *testing.T) {
	app, catalog := setup(t, nil)

	resp, _ := do(t, app, http.MethodPost, "/api/stores/store-1/categories", `{"name":"Specials"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, catalog.ListCategories("store-1"), 3)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/store-1/categories", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/ghost/categories", `{"name":"Specials"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItems_Lifecycle(t *testing.T) {
	app, catalog := setup(t, nil)
	catalog.CreateStore(models.Store{ID: "s9", Name: "Test Cafe"})

	resp, env := do(t, app, http.MethodPost, "/api/stores/s9/items", `{"name":"Soup","price":5,"category":"Starters","inStock":true,"itemType":"veg"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var soup models.MenuItem
	require.NoError(t, json.Unmarshal(env.Data, &soup))
	assert.NotEmpty(t, soup.ID)
	assert.Equal(t, "s9", soup.StoreID)
	assert.Equal(t, models.ItemTypeVeg, soup.ItemType)
	assert.NotEmpty(t, soup.Image)

	resp, env = do(t, app, http.MethodGet, "/api/stores/s9/items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.Total)

	resp, _ = do(t, app, http.MethodPut, "/api/items/"+soup.ID, `{"name":"Tomato Soup","price":6,"category":"Starters","inStock":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got, _ := catalog.GetItem(soup.ID)
	assert.Equal(t, models.MenuItem{ID: soup.ID, StoreID: "s9", Name: "Tomato Soup", Price: 6, Category: "Starters"}, got)

	resp, _ = do(t, app, http.MethodDelete, "/api/items/"+soup.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, catalog.ListItems("s9"))

	resp, _ = do(t, app, http.MethodDelete, "/api/items/"+soup.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPut, "/api/items/"+soup.ID, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItems_CreateDefaultsAndValidation(t *testing.T) {
	app, _ := setup(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/stores/store-2/items", `{"name":"Fries","price":3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var fries models.MenuItem
	require.NoError(t, json.Unmarshal(env.Data, &fries))
	assert.Equal(t, "Burgers", fries.Category)
	assert.True(t, fries.InStock)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/store-2/items", `{"name":"Fries","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/store-2/items", `{"name":"Fries","itemType":"vegan"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/store-2/items", `{"id":"i1","name":"Dup"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/stores/ghost/items", `{"name":"Fries"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItems_CategoryFilter(t *testing.T) {
	app, _ := setup(t, nil)

	_, env := do(t, app, http.MethodGet, "/api/stores/store-1/items?category=Mains", "")
	assert.Equal(t, 1, env.Total)

	_, env = do(t, app, http.MethodGet, "/api/stores/store-1/items?category=All", "")
	assert.Equal(t, 2, env.Total)
}

func TestProfile(t *testing.T) {
	app, catalog := setup(t, nil)
	before := catalog.GetProfile()

	resp, env := do(t, app, http.MethodPatch, "/api/profile", `{"name":"Jane Doe"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.MerchantProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, before.Email, profile.Email)
	assert.Equal(t, before.Plan, profile.Plan)

	resp, env = do(t, app, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Jane Doe", profile.Name)

	resp, env = do(t, app, http.MethodPatch, "/api/profile", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No profile changes", env.Message)

	resp, _ = do(t, app, http.MethodPatch, "/api/profile", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuggestions(t *testing.T) {
	app, _ := setup(t, utils.NewSuggester(stubGenerator{text: "$9.75"}, time.Second, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/suggestions/price", strings.NewReader(`{"name":"Burger"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out utils.SuggestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "9.75", out.Suggestion)

	resp, _ = do(t, app, http.MethodPost, "/api/suggestions/description", `{"category":"Mains"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuggestions_Fallback(t *testing.T) {
	app, _ := setup(t, utils.NewSuggester(nil, 0, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/suggestions/description", strings.NewReader(`{"name":"Soup"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out utils.SuggestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, utils.MissingKeyDescription, out.Suggestion)
}

func TestStoreQR(t *testing.T) {
	app, _ := setup(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/store-1/qr?size=128", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "the-golden-spoon-qr.png")

	resp, _ = do(t, app, http.MethodGet, "/api/stores/store-1/qr?size=5000", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/stores/ghost/qr", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env := do(t, app, http.MethodGet, "/api/stores/store-1/qr-link", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"payload":"STORE:store-1"`)
}
