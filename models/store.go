package models

import "time"

// TimeLayout is the display format used by every response type.
const TimeLayout = "02-01-2006 15:04:05"

type Store struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Logo        string    `json:"logo"`
	CoverImage  string    `json:"coverImage"`
	IsOpen      bool      `json:"isOpen"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	LastUpdated time.Time `json:"lastUpdated"`
	Rating      float64   `json:"rating"`
}

// StoreResponse represents the store data returned in API responses
type StoreResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Logo        string  `json:"logo"`
	CoverImage  string  `json:"coverImage"`
	IsOpen      bool    `json:"isOpen"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	LastUpdated string  `json:"lastUpdated"`
	Rating      float64 `json:"rating"`
}

// ToResponse converts a Store model to a StoreResponse
func (s *Store) ToResponse() *StoreResponse {
	return &StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Logo:        s.Logo,
		CoverImage:  s.CoverImage,
		IsOpen:      s.IsOpen,
		Lat:         s.Lat,
		Lng:         s.Lng,
		LastUpdated: s.LastUpdated.Format(TimeLayout),
		Rating:      s.Rating,
	}
}
