package models

// Category groups menu items inside a single store.
type Category struct {
	ID      string `json:"id"`
	StoreID string `json:"storeId"`
	Name    string `json:"name"`
}
