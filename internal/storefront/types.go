package storefront

// Product is a product record as returned by the storefront Admin API.
type Product struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	BodyHTML string          `json:"body_html"`
	Status   string          `json:"status"`
	Tags     string          `json:"tags"`
	Images   []Image         `json:"images"`
	Variants []Variant       `json:"variants"`
	Options  []ProductOption `json:"options"`
}

// Image is one product image.
type Image struct {
	ID  int64  `json:"id,omitempty"`
	Src string `json:"src"`
}

// Variant is one purchasable variant of a product.
type Variant struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Price   string `json:"price,omitempty"`
	Option1 string `json:"option1,omitempty"`
	Option2 string `json:"option2,omitempty"`
}

// ProductOption is a named option axis with its values (e.g. Size: S/M/L).
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

// NewProduct is the payload for creating a product. Status is always forced
// to draft by the client so nothing reaches the storefront unreviewed.
type NewProduct struct {
	Title    string          `json:"title"`
	BodyHTML string          `json:"body_html,omitempty"`
	Tags     string          `json:"tags,omitempty"`
	Status   string          `json:"status,omitempty"`
	Images   []Image         `json:"images,omitempty"`
	Variants []Variant       `json:"variants,omitempty"`
	Options  []ProductOption `json:"options,omitempty"`
}
