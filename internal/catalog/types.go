package catalog

// Product mirrors one entry of products.json. Extra fields in the payload
// are ignored by the decoder.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
}

// CloneProducts returns an independent copy of items. Nil and empty inputs
// both return nil.
func CloneProducts(items []Product) []Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Product, len(items))
	copy(dup, items)
	return dup
}
