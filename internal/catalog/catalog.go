// Package catalog holds the static product reference data.  The catalog is
// immutable at runtime; every consumer works against the package-level
// slice in declaration order.
package catalog

// Category groups products for the inventory listing.
type Category string

const (
	CategoryCarrier   Category = "Carrier Oils"
	CategoryEssential Category = "Essential Oils"
	CategorySpecial   Category = "Special Oils"
)

// Categories is the fixed display order of the inventory listing.
var Categories = []Category{CategoryCarrier, CategoryEssential, CategorySpecial}

// Size is one purchasable tier of a product.
type Size struct {
	Label          string `json:"size"`
	Price          string `json:"price"`
	DropsPerBottle int    `json:"dropsPerBottle,omitempty"`
	Link           string `json:"link"`
	SoldOut        bool   `json:"soldOut,omitempty"`
}

// Product is one catalog entry.
type Product struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Benefits    []string `json:"benefits"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Prices      string   `json:"prices"`
	Sizes       []Size   `json:"sizes"`
	SoldOut     bool     `json:"soldOut"`
}

// All returns the complete catalog in canonical order.
func All() []Product { return products }

// ByCategory filters the catalog preserving canonical order.
func ByCategory(c Category) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Find looks a product up by exact name.  The second return reports whether
// the product exists.
func Find(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// TotalCount is the size of the catalog.
func TotalCount() int { return len(products) }

func twoSizes(price15, price30, link string, soldOut bool) []Size {
	return []Size{
		{Label: "15ml", Price: price15, DropsPerBottle: 300, Link: link, SoldOut: soldOut},
		{Label: "30ml", Price: price30, DropsPerBottle: 600, Link: link, SoldOut: soldOut},
	}
}

var products = []Product{
	{
		Name:        "Moringa Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"hair growth", "anti-aging", "moisturizing", "dandruff prevention", "acne treatment", "skin brightening"},
		Description: "Cold-pressed moringa oil rich in antioxidants and vitamins",
		Link:        "https://hathororganics.com/products/moringa-oil",
		Prices:      "15ml LE 500.00, 30ml LE 1,000.00",
		Sizes:       twoSizes("LE 500.00", "LE 1,000.00", "https://hathororganics.com/products/moringa-oil", false),
	},
	{
		Name:        "Coconut Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"moisturizing", "hair conditioning", "antibacterial", "skin healing", "makeup removal"},
		Description: "Pure cold-pressed coconut oil for skin and hair care",
		Link:        "https://hathororganics.com/products/coconut-oil",
		Prices:      "15ml LE 200.00, 30ml LE 400.00",
		Sizes:       twoSizes("LE 200.00", "LE 400.00", "https://hathororganics.com/products/coconut-oil", false),
	},
	{
		Name:        "Sweet Almond Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"moisturizing", "skin softening", "anti-inflammatory", "skin healing", "hair conditioning"},
		Description: "Pure cold-pressed sweet almond oil for skin and hair care",
		Link:        "https://hathororganics.com/products/sweet-almond-oil",
		Prices:      "15ml LE 400.00, 30ml LE 800.00",
		Sizes:       twoSizes("LE 400.00", "LE 800.00", "https://hathororganics.com/products/sweet-almond-oil", false),
	},
	{
		Name:        "Sesame Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"hair growth", "moisturizing", "anti-inflammatory", "UV protection", "acne treatment", "skin healing"},
		Description: "Pure cold-pressed sesame oil with natural UV protection",
		Link:        "https://hathororganics.com/products/sesame-oil",
		Prices:      "15ml LE 300.00, 30ml LE 600.00",
		Sizes:       twoSizes("LE 300.00", "LE 600.00", "https://hathororganics.com/products/sesame-oil", false),
	},
	{
		Name:        "Argan Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"hair conditioning", "skin moisturizing", "anti-aging", "nail health"},
		Description: "Pure cold-pressed argan oil for hair, skin, and nails",
		Link:        "https://hathororganics.com/products/argan-oil",
		Prices:      "15ml LE 480.00, 30ml LE 960.00",
		Sizes:       twoSizes("LE 480.00", "LE 960.00", "https://hathororganics.com/products/argan-oil", false),
	},
	{
		Name:        "Cellulite Oil Mix",
		Category:    CategoryCarrier,
		Benefits:    []string{"cellulite reduction", "skin tightening", "circulation improvement", "body contouring"},
		Description: "Specialized oil blend for cellulite reduction and skin tightening",
		Link:        "https://hathororganics.com/products/cellulite-oil-mix",
		Prices:      "15ml LE 360.00, 30ml LE 720.00",
		Sizes:       twoSizes("LE 360.00", "LE 720.00", "https://hathororganics.com/products/cellulite-oil-mix", false),
	},
	{
		Name:        "Garden Cress Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"hair growth", "scalp health", "dandruff prevention", "hair strengthening"},
		Description: "Cold-pressed garden cress oil rich in nutrients for hair growth",
		Link:        "https://hathororganics.com/products/garden-cress-oil",
		Prices:      "15ml LE 300.00, 30ml LE 600.00",
		Sizes:       twoSizes("LE 300.00", "LE 600.00", "https://hathororganics.com/products/garden-cress-oil", false),
	},
	{
		Name:        "Black Seed Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"immune support", "anti-inflammatory", "skin healing", "hair growth", "respiratory health"},
		Description: "Pure black seed oil with powerful healing properties",
		Link:        "https://hathororganics.com/products/black-seed-oil",
		Prices:      "15ml LE 500.00, 30ml LE 1,000.00",
		Sizes:       twoSizes("LE 500.00", "LE 1,000.00", "https://hathororganics.com/products/black-seed-oil", false),
	},
	{
		Name:        "Virgin Olive Oil",
		Category:    CategoryCarrier,
		Benefits:    []string{"moisturizing", "anti-aging", "skin healing", "hair conditioning"},
		Description: "Pure virgin olive oil for skin and hair care",
		Link:        "https://hathororganics.com/products/virgin-olive-oil",
		Prices:      "15ml LE 240.00, 30ml LE 480.00",
		Sizes:       twoSizes("LE 240.00", "LE 480.00", "https://hathororganics.com/products/virgin-olive-oil", true),
		SoldOut:     true,
	},
	{
		Name:        "Rosemary Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"hair growth", "scalp circulation", "dandruff prevention", "hair strengthening"},
		Description: "Pure rosemary oil for stimulating hair growth and scalp health",
		Link:        "https://hathororganics.com/products/rosemary-oil",
		Prices:      "15ml LE 380.00, 30ml LE 760.00",
		Sizes:       twoSizes("LE 380.00", "LE 760.00", "https://hathororganics.com/products/rosemary-oil", false),
	},
	{
		Name:        "Frankincense Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"anti-aging", "skin regeneration", "stress relief", "meditation support"},
		Description: "Pure frankincense oil for spiritual and skin wellness",
		Link:        "https://hathororganics.com/products/frankincense-oil",
		Prices:      "15ml LE 1,000.00, 30ml LE 2,000.00",
		Sizes:       twoSizes("LE 1,000.00", "LE 2,000.00", "https://hathororganics.com/products/frankincense-oil", false),
	},
	{
		Name:        "Lavender Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"relaxation", "skin healing", "acne treatment", "sleep support"},
		Description: "Pure lavender oil for aromatherapy and skin care",
		Link:        "https://hathororganics.com/products/lavender-oil",
		Prices:      "15ml LE 450.00, 30ml LE 900.00",
		Sizes:       twoSizes("LE 450.00", "LE 900.00", "https://hathororganics.com/products/lavender-oil", false),
	},
	{
		Name:        "Rose Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"skin rejuvenation", "emotional balance", "anti-aging", "mood enhancement"},
		Description: "Pure rose oil for skin and emotional wellness",
		Link:        "https://hathororganics.com/products/rose-oil",
		Prices:      "15ml LE 750.00, 30ml LE 1,500.00",
		Sizes:       twoSizes("LE 750.00", "LE 1,500.00", "https://hathororganics.com/products/rose-oil", false),
	},
	{
		Name:        "Cinnamon Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"circulation improvement", "warming", "antimicrobial", "digestive support"},
		Description: "Pure cinnamon oil with warming and antimicrobial properties",
		Link:        "https://hathororganics.com/products/cinnamon-oil",
		Prices:      "15ml LE 700.00, 30ml LE 1,400.00",
		Sizes:       twoSizes("LE 700.00", "LE 1,400.00", "https://hathororganics.com/products/cinnamon-oil", true),
		SoldOut:     true,
	},
	{
		Name:        "Jasmine Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"mood enhancement", "skin healing", "anti-aging", "stress relief"},
		Description: "Pure jasmine oil for emotional and skin wellness",
		Link:        "https://hathororganics.com/products/jasmine-oil",
		Prices:      "15ml LE 1,800.00, 30ml LE 3,600.00",
		Sizes:       twoSizes("LE 1,800.00", "LE 3,600.00", "https://hathororganics.com/products/jasmine-oil", true),
		SoldOut:     true,
	},
	{
		Name:        "Tea Tree Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"acne treatment", "antifungal", "antibacterial", "scalp health"},
		Description: "Pure tea tree oil for skin and scalp care",
		Link:        "https://hathororganics.com/products/tea-tree-oil",
		Prices:      "15ml LE 650.00, 30ml LE 1,300.00",
		Sizes:       twoSizes("LE 650.00", "LE 1,300.00", "https://hathororganics.com/products/tea-tree-oil", false),
	},
	{
		Name:        "Peppermint Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"pain relief", "energy boosting", "cooling", "digestive support"},
		Description: "Pure peppermint oil for pain relief and invigoration",
		Link:        "https://hathororganics.com/products/peppermint-oil",
		Prices:      "15ml LE 350.00, 30ml LE 700.00",
		Sizes:       twoSizes("LE 350.00", "LE 700.00", "https://hathororganics.com/products/peppermint-oil", false),
	},
	{
		Name:        "Clove Oil",
		Category:    CategoryEssential,
		Benefits:    []string{"pain relief", "antimicrobial", "dental health", "circulation improvement"},
		Description: "Pure clove oil with powerful antimicrobial properties",
		Link:        "https://hathororganics.com/products/clove-oil",
		Prices:      "15ml LE 700.00, 30ml LE 1,400.00",
		Sizes:       twoSizes("LE 700.00", "LE 1,400.00", "https://hathororganics.com/products/clove-oil", false),
	},
	{
		Name:        "Acne Set",
		Category:    CategorySpecial,
		Benefits:    []string{"acne treatment", "skin balancing", "anti-inflammatory", "healing"},
		Description: "Complete acne treatment set with specially formulated oils",
		Link:        "https://hathororganics.com/products/acne-set",
		Prices:      "Set LE 1,200.00, 900 drops",
		Sizes: []Size{
			{Label: "Set", Price: "LE 1,200.00", DropsPerBottle: 900, Link: "https://hathororganics.com/products/acne-set"},
		},
	},
	{
		Name:        "Queen Tiye Hair Oil",
		Category:    CategorySpecial,
		Benefits:    []string{"hair growth", "scalp health", "hair strengthening", "ancient Egyptian formula"},
		Description: "Special hair oil following an ancient Egyptian recipe for Queen Tiye",
		Link:        "https://hathororganics.com/products/queen-tiye-hair-oil",
		Prices:      "15ml LE 240.00, 30ml LE 480.00",
		Sizes:       twoSizes("LE 240.00", "LE 480.00", "https://hathororganics.com/products/queen-tiye-hair-oil", true),
		SoldOut:     true,
	},
}
