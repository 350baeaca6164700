package domain

// Product is a catalog record. The catalog service owns it; the storefront
// treats it as immutable.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	ListPrice   float64  `json:"list_price"`
	OfferPrice  float64  `json:"offer_price"`
	InStock     bool     `json:"in_stock"`
	Images      []string `json:"images,omitempty"`
	Description []string `json:"description,omitempty"`
	Weight      string   `json:"weight,omitempty"`
}

// CartLine is a display-ready pairing of a product snapshot with the desired
// quantity. It is derived on every read and never stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart amount. The offer price is
// the authoritative unit price; the list price is display-only.
func (l CartLine) Subtotal() float64 {
	return l.Product.OfferPrice * float64(l.Quantity)
}
