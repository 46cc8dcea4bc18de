package entity

// Product is an inventory item. Stock is adjusted by order lifecycle events
// and may go negative; no floor is enforced.
type Product struct {
	ID    string
	Name  string
	Price float64
	Stock int
}
