package types

// Monument is a heritage site listed on the platform.
type Monument struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	ImageURL     string  `json:"image_url" db:"image_url"`
	PanoImageURL string  `json:"pano_image_url" db:"pano_image_url"`
	Latitude     float64 `json:"latitude" db:"latitude"`
	Longitude    float64 `json:"longitude" db:"longitude"`
	Category     string  `json:"category" db:"category"`
	State        string  `json:"state" db:"state"`

	// Gallery holds extra image URLs from monument_images. Always
	// serialized, as an empty array when the monument has none.
	Gallery []string `json:"gallery"`
}

// Defaults applied when a monument is created without these fields.
const (
	DefaultMonumentCategory = "Monument"
	DefaultMonumentState    = "India"
)
