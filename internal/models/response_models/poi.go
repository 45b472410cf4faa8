package response_models

// POI is the boundary shape of a point of interest. Responses always carry
// latitude/longitude, never the stored geometry.
type POI struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	HistoricImageURL string  `json:"historic_image_url,omitempty"`
	ModernImageURL   string  `json:"modern_image_url,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}
