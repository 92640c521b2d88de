package generation

// Seed is a small descriptor used as input to product generation.
type Seed struct {
	Brand       string `json:"brand" binding:"required"`
	ThemeNotes  string `json:"themeNotes"`
	ProductType string `json:"productType" binding:"required"`
	StyleNotes  string `json:"styleNotes"`
}

// VariantOption is one option axis of a generated product (e.g. Size: S/M/L).
type VariantOption struct {
	OptionName string   `json:"optionName"`
	Values     []string `json:"values"`
}

// GeneratedProduct is the structured output of the generation step.
type GeneratedProduct struct {
	Title            string          `json:"title" validate:"required"`
	ShortDescription string          `json:"shortDescription"`
	LongDescription  string          `json:"longDescription"`
	BaseCost         float64         `json:"baseCost" validate:"gte=0"`
	RecommendedPrice *float64        `json:"recommendedPrice,omitempty"`
	Tags             []string        `json:"tags"`
	VariantOptions   []VariantOption `json:"variantOptions"`
}

// DefaultSeeds is the built-in demo seed list used when a bulk request
// supplies no seeds of its own.
func DefaultSeeds() []Seed {
	return []Seed{
		{Brand: "Northwind Supply", ProductType: "enamel mug", ThemeNotes: "night sky over pine forest", StyleNotes: "muted blues, minimal linework"},
		{Brand: "Northwind Supply", ProductType: "canvas tote", ThemeNotes: "vintage topographic map", StyleNotes: "two-tone, earthy"},
		{Brand: "Northwind Supply", ProductType: "art print", ThemeNotes: "lighthouse in fog", StyleNotes: "soft gradients, grainy texture"},
		{Brand: "Northwind Supply", ProductType: "sticker pack", ThemeNotes: "national park badges", StyleNotes: "retro, bold outlines"},
		{Brand: "Northwind Supply", ProductType: "crewneck sweatshirt", ThemeNotes: "mountain sunrise", StyleNotes: "warm palette, distressed print"},
	}
}
