package models

// Product represents the scraped product details
type Product struct {
	URL          string            `json:"url"`
	Name         *string           `json:"name"`
	Price        *string           `json:"price"`
	Currency     *string           `json:"currency"`
	SKU          *string           `json:"sku"`
	Availability *string           `json:"availability"`
	Description  *string           `json:"description"`
	Images       []string          `json:"images"`
	Extras       map[string]string `json:"extras"`
}

// NewProduct creates an empty Product bound to its source URL
func NewProduct(url string) *Product {
	return &Product{
		URL:    url,
		Images: []string{},
		Extras: map[string]string{},
	}
}

// Field returns the value stored under the record's JSON field name.
// Absent optional strings are returned as a nil *string.
func (p *Product) Field(name string) (any, bool) {
	switch name {
	case "url":
		return p.URL, true
	case "name":
		return p.Name, true
	case "price":
		return p.Price, true
	case "currency":
		return p.Currency, true
	case "sku":
		return p.SKU, true
	case "availability":
		return p.Availability, true
	case "description":
		return p.Description, true
	case "images":
		return p.Images, true
	case "extras":
		return p.Extras, true
	}
	return nil, false
}
