package domain

// Order is a completed purchase as returned by the order service. Orders are
// created by the basket service's checkout operation and read-only afterward.
type Order struct {
	ID          string      `json:"id"`
	Address     string      `json:"address"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID        string  `json:"id"`
	CatalogID string  `json:"catalogId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Total returns the order total as the sum of price * quantity across all
// lines.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
