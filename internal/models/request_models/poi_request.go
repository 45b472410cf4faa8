package request_models

type CreatePOIRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	HistoricImageURL string   `json:"historic_image_url"`
	ModernImageURL   string   `json:"modern_image_url"`
	Latitude         *float64 `json:"latitude" binding:"required"`
	Longitude        *float64 `json:"longitude" binding:"required"`
}

// UpdatePOIRequest carries only the fields the caller wants changed.
// Latitude and longitude must come as a pair.
type UpdatePOIRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	HistoricImageURL *string  `json:"historic_image_url"`
	ModernImageURL   *string  `json:"modern_image_url"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// ListPOIQuery is the /pois query string. A center turns the listing into a
// proximity search; radius defaults to 500 meters.
type ListPOIQuery struct {
	Latitude  *float64
	Longitude *float64
	Radius    *float64
	Skip      int
	Limit     int
}
