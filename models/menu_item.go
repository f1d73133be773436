package models

import (
	"encoding/json"
	"fmt"
)

// ItemType is the optional dietary tag of a menu item. The zero value means
// the tag is absent.
type ItemType uint8

const (
	ItemTypeUnspecified ItemType = iota
	ItemTypeVeg
	ItemTypeNonVeg
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeVeg:
		return "veg"
	case ItemTypeNonVeg:
		return "non-veg"
	default:
		return ""
	}
}

// ParseItemType maps the wire name back to an ItemType. An empty string is
// the unspecified tag.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "":
		return ItemTypeUnspecified, nil
	case "veg":
		return ItemTypeVeg, nil
	case "non-veg":
		return ItemTypeNonVeg, nil
	}
	return ItemTypeUnspecified, fmt.Errorf("unknown item type %q", s)
}

func (t ItemType) MarshalJSON() ([]byte, error) {
	if t == ItemTypeUnspecified {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *ItemType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ItemTypeUnspecified
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseItemType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type MenuItem struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"` // category name, not a Category.ID
	Image       string   `json:"image"`
	InStock     bool     `json:"inStock"`
	ItemType    ItemType `json:"itemType,omitempty"`
}
