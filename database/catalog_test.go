package database

import (
	"fmt"
	"testing"
	"time"

	"merchant-dashboard-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, seed Seed) *Catalog {
	t.Helper()
	c := NewCatalog(seed)
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return c
}

func categoryNames(cats []models.Category) []string {
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = cat.Name
	}
	return names
}

func TestCreateStore_SeedsDefaultCategories(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))
	before := len(c.categories)

	created := c.CreateStore(models.Store{ID: "s9", Name: "Test Cafe"})
	assert.Equal(t, "s9", created.ID)

	cats := c.ListCategories("s9")
	require.Len(t, cats, 7)
	assert.Equal(t, []string{"Starters", "Main Course", "Desserts", "Beverages", "Snacks", "Combos", "Add-ons"}, categoryNames(cats))
	for _, cat := range cats {
		assert.Equal(t, "s9", cat.StoreID)
		assert.NotEmpty(t, cat.ID)
	}
	assert.Len(t, c.categories, before+len(DefaultCategoryNames))
}

func TestCreateStore_GeneratesMissingID(t *testing.T) {
	c := newTestCatalog(t, EmptySeed())

	created := c.CreateStore(models.Store{Name: "No ID"})
	assert.Equal(t, "gen-1", created.ID)

	got, ok := c.GetStore(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestNewCatalog_GeneratesUUIDs(t *testing.T) {
	c := NewCatalog(EmptySeed())
	a := c.CreateItem(models.MenuItem{Name: "a"})
	b := c.CreateItem(models.MenuItem{Name: "b"})
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestListStores_InsertionOrderAndCopy(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))
	c.CreateStore(models.Store{ID: "s3", Name: "Third"})

	first := c.ListStores()
	second := c.ListStores()
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "store-1", first[0].ID)
	assert.Equal(t, "store-2", first[1].ID)
	assert.Equal(t, "s3", first[2].ID)

	first[0].Name = "mutated"
	got, _ := c.GetStore("store-1")
	assert.Equal(t, "The Golden Spoon", got.Name)
}

func TestGetStore_Missing(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))
	_, ok := c.GetStore("nope")
	assert.False(t, ok)
}

func TestUpdateStore(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))

	replacement := models.Store{ID: "store-2", Name: "Burger Palace", City: "Boston, MA"}
	_, err := c.UpdateStore(replacement)
	require.NoError(t, err)

	got, ok := c.GetStore("store-2")
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.Empty(t, got.Address)
}

func TestUpdateStore_MissingLeavesStateAlone(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))
	before := c.ListStores()

	_, err := c.UpdateStore(models.Store{ID: "ghost", Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, c.ListStores())
}

func TestCreateCategory_AllowsDuplicates(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))

	a := c.CreateCategory("store-1", "Specials")
	b := c.CreateCategory("store-1", "Specials")
	assert.NotEqual(t, a.ID, b.ID)

	cats := c.ListCategories("store-1")
	assert.Equal(t, []string{"Starters", "Mains", "Specials", "Specials"}, categoryNames(cats))
	assert.Empty(t, c.ListCategories("unknown"))
}

func TestCreateItem_ListedOnceWithSameFields(t *testing.T) {
	c := newTestCatalog(t, EmptySeed())
	c.CreateStore(models.Store{ID: "s9", Name: "Test Cafe"})

	in := models.MenuItem{
		StoreID:  "s9",
		Name:     "Soup",
		Price:    5,
		Category: "Starters",
		InStock:  true,
		ItemType: models.ItemTypeVeg,
	}
	created := c.CreateItem(in)
	in.ID = created.ID

	items := c.ListItems("s9")
	require.Len(t, items, 1)
	assert.Equal(t, in, items[0])
}

func TestDeleteItem(t *testing.T) {
	c := newTestCatalog(t, EmptySeed())
	c.CreateStore(models.Store{ID: "s9", Name: "Test Cafe"})
	soup := c.CreateItem(models.MenuItem{StoreID: "s9", Name: "Soup", Price: 5, Category: "Starters", InStock: true})

	require.NoError(t, c.DeleteItem(soup.ID))
	assert.Empty(t, c.ListItems("s9"))
	_, ok := c.GetItem(soup.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, c.DeleteItem(soup.ID), ErrNotFound)
}

func TestDeleteItem_OnlyRemovesMatchingID(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))

	require.NoError(t, c.DeleteItem("i1"))
	items := c.ListItems("store-1")
	require.Len(t, items, 1)
	assert.Equal(t, "i2", items[0].ID)
	assert.Len(t, c.ListItems("store-2"), 1)
}

func TestUpdateItem_ReplacesWholeRecord(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))

	replacement := models.MenuItem{ID: "i1", StoreID: "store-1", Name: "Plain Pasta", Price: 12}
	_, err := c.UpdateItem(replacement)
	require.NoError(t, err)

	got, ok := c.GetItem("i1")
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.False(t, got.InStock)
	assert.Equal(t, models.ItemTypeUnspecified, got.ItemType)

	_, err = c.UpdateItem(models.MenuItem{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile_MergesSetFields(t *testing.T) {
	seed := EmptySeed()
	seed.Profile = models.MerchantProfile{Name: "John", Email: "a@b.com", StoreCount: 2}
	c := newTestCatalog(t, seed)

	name := "Jane Doe"
	got := c.UpdateProfile(models.ProfileUpdate{Name: &name})
	assert.Equal(t, "Jane Doe", got.Name)

	p := c.GetProfile()
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, 2, p.StoreCount)
}

func TestReset(t *testing.T) {
	c := newTestCatalog(t, DefaultSeed(time.Now()))
	c.CreateStore(models.Store{ID: "s9"})

	c.Reset(EmptySeed())
	assert.Empty(t, c.ListStores())
	assert.Empty(t, c.ListCategories("s9"))
	assert.Equal(t, models.MerchantProfile{}, c.GetProfile())
}

func TestSeedIsNotAliased(t *testing.T) {
	seed := DefaultSeed(time.Now())
	c := newTestCatalog(t, seed)

	_, err := c.UpdateStore(models.Store{ID: "store-1", Name: "Changed"})
	require.NoError(t, err)
	assert.Equal(t, "The Golden Spoon", seed.Stores[0].Name)
}
