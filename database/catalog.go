package database

import (
	"errors"
	"slices"
	"sync"

	"merchant-dashboard-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned by updates and deletes that match no record.
// The catalog is left unchanged when it is returned.
var ErrNotFound = errors.New("record not found")

// Catalog holds stores, categories, menu items and the merchant profile in
// memory. Every accessor returns copies, so callers can only change the
// catalog through its write methods.
type Catalog struct {
	mu         sync.RWMutex
	stores     []models.Store
	categories []models.Category
	items      []models.MenuItem
	profile    models.MerchantProfile
	newID      func() string
}

func NewCatalog(seed Seed) *Catalog {
	c := &Catalog{newID: func() string { return uuid.NewString() }}
	c.load(seed)
	return c
}

// Reset replaces the whole catalog state with seed.
func (c *Catalog) Reset(seed Seed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(seed)
}

func (c *Catalog) load(seed Seed) {
	c.stores = slices.Clone(seed.Stores)
	c.categories = slices.Clone(seed.Categories)
	c.items = slices.Clone(seed.Items)
	c.profile = seed.Profile
}

func (c *Catalog) ensureID(id string) string {
	if id != "" {
		return id
	}
	return c.newID()
}

// Stores

func (c *Catalog) ListStores() []models.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.stores)
}

func (c *Catalog) CountStores() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stores)
}

func (c *Catalog) GetStore(id string) (models.Store, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.stores {
		if s.ID == id {
			return s, true
		}
	}
	return models.Store{}, false
}

// CreateStore appends store and seeds the default categories for it.
func (c *Catalog) CreateStore(store models.Store) models.Store {
	c.mu.Lock()
	defer c.mu.Unlock()

	store.ID = c.ensureID(store.ID)
	c.stores = append(c.stores, store)
	for _, name := range DefaultCategoryNames {
		c.categories = append(c.categories, models.Category{
			ID:      c.newID(),
			StoreID: store.ID,
			Name:    name,
		})
	}
	return store
}

// UpdateStore replaces the whole record with the same ID.
func (c *Catalog) UpdateStore(store models.Store) (models.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.stores, func(s models.Store) bool { return s.ID == store.ID })
	if i < 0 {
		return models.Store{}, ErrNotFound
	}
	c.stores[i] = store
	return store, nil
}

// Categories

func (c *Catalog) ListCategories(storeID string) []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Category{}
	for _, cat := range c.categories {
		if cat.StoreID == storeID {
			out = append(out, cat)
		}
	}
	return out
}

// CreateCategory appends a category. Names are not required to be unique
// within a store.
func (c *Catalog) CreateCategory(storeID, name string) models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	cat := models.Category{ID: c.newID(), StoreID: storeID, Name: name}
	c.categories = append(c.categories, cat)
	return cat
}

// Menu items

func (c *Catalog) ListItems(storeID string) []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.MenuItem{}
	for _, item := range c.items {
		if item.StoreID == storeID {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) GetItem(id string) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (c *Catalog) CreateItem(item models.MenuItem) models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	item.ID = c.ensureID(item.ID)
	c.items = append(c.items, item)
	return item
}

// UpdateItem replaces the whole record with the same ID.
func (c *Catalog) UpdateItem(item models.MenuItem) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.items, func(it models.MenuItem) bool { return it.ID == item.ID })
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	c.items[i] = item
	return item, nil
}

func (c *Catalog) DeleteItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(it models.MenuItem) bool { return it.ID == id })
	if len(c.items) == n {
		return ErrNotFound
	}
	return nil
}

// Profile

func (c *Catalog) GetProfile() models.MerchantProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

// UpdateProfile merges the set fields of update over the profile.
func (c *Catalog) UpdateProfile(update models.ProfileUpdate) models.MerchantProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = update.Apply(c.profile)
	return c.profile
}
