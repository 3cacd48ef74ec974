package fixture

var products = []ProductSeed{
	{ID: "prod-1", Name: "Speckled Mug", Description: "12oz stoneware mug, food safe glaze.", Image: "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d", Price: "34.00", Currency: "USD", CreatorID: "creator-1", Category: "Ceramics", Rating: 5, InStock: true},
	{ID: "prod-2", Name: "Indigo Silk Scarf", Description: "Hand dyed, 180cm.", Image: "https://images.unsplash.com/photo-1601924994987-69e26d50dc26", Price: "89.50", Currency: "USD", CreatorID: "creator-3", Category: "Textiles", Rating: 4, InStock: true},
	{ID: "prod-3", Name: "Risograph Zine Vol. 3", Description: "Twelve pages, two colors.", Price: "12", Currency: "USD", CreatorID: "creator-2", Category: "Printmaking", Rating: 4, InStock: true},
	{ID: "prod-4", Name: "Walnut Serving Board", Description: "Oiled black walnut, 40cm.", Price: "120.00", Currency: "USD", CreatorID: "creator-4", Category: "Woodwork", Rating: 5, InStock: false},
}

var sellerProducts = []SellerProductSeed{
	{ID: "listing-1", Name: "Weaving Starter Kit", Price: "45.00", Currency: "USD", Stock: 14, Status: "active"},
	{ID: "listing-2", Name: "Natural Dye Workshop Pass", Price: "60.00", Currency: "USD", Stock: 0, Status: "draft"},
}

// Products returns the catalog seeds.
func Products() []ProductSeed { return clone(products) }

// SellerProducts returns the demo listings.
func SellerProducts() []SellerProductSeed { return clone(sellerProducts) }
