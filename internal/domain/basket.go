package domain

// Basket is the server-side cart entity. It is created lazily on the first
// add-to-basket action and destroyed on checkout or explicit removal.
type Basket struct {
	ID    string       `json:"id"`
	Items []BasketItem `json:"items"`
}

// BasketItem is a single line in a basket. ID is assigned by the basket
// service and absent until the line has been persisted. Price is a snapshot
// taken at add-time; the server is authoritative for both.
type BasketItem struct {
	ID        string  `json:"id,omitempty"`
	CatalogID string  `json:"catalogId"`
	Price     float64 `json:"price,omitempty"`
	Quantity  int     `json:"quantity"`
}

// ItemCount returns the total number of units across all lines, which is
// what the basket indicator displays.
func (b Basket) ItemCount() int {
	var count int
	for _, item := range b.Items {
		count += item.Quantity
	}
	return count
}
