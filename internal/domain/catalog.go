package domain

// Catalog represents a purchasable product record as returned by the catalog
// service. All fields except Liked are immutable from this client's
// perspective; Liked is toggled through a side-effecting call and mirrored
// locally via ApplyLikeToggle.
type Catalog struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"createdAt"`
	CreatedBy   string  `json:"createdBy"`
	UpdatedAt   string  `json:"updatedAt"`
	UpdatedBy   string  `json:"updatedBy"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Liked       bool    `json:"liked"`
	Images      []Image `json:"images"`
}

// Image is a single product image. The catalog service returns images in
// display order.
type Image struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
	UpdatedAt string `json:"updatedAt"`
	UpdatedBy string `json:"updatedBy"`
	URL       string `json:"url"`
}

// APIResponse is the list envelope used by the catalog service. Count is only
// present when the request asked for a total.
type APIResponse[T any] struct {
	Value []T    `json:"value"`
	Count *int64 `json:"count,omitempty"`
}

// ApplyLikeToggle returns a copy of item with the liked flag set to liked.
// The input is never mutated, so cached values can be patched by replacing
// the stored entry with the returned one.
func ApplyLikeToggle(item Catalog, liked bool) Catalog {
	item.Liked = liked
	return item
}
