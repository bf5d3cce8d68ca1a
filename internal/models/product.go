package models

// Product is the product record as the remote catalog API speaks it.
// The service assigns ID on creation; until then it is empty.
// IsEnabled travels as 1/0 rather than a JSON bool, and ImagesURL carries
// a single empty string as its "no secondary images" placeholder while a
// record is being edited (persisted records may have it empty).
type Product struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Unit        string   `json:"unit"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IsEnabled   int      `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// Enabled reports the 1/0 flag as a bool.
func (p Product) Enabled() bool {
	return p.IsEnabled != 0
}

// Clone returns a deep copy; the ImagesURL slice is not shared.
func (p Product) Clone() Product {
	out := p
	if p.ImagesURL != nil {
		out.ImagesURL = append([]string(nil), p.ImagesURL...)
	}
	return out
}
