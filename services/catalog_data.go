package services

import "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"

// Static catalog reference data. The storefront never mutates it.

func catalogProducts() []models.Product {
	return []models.Product{
		// Beverages
		{
			ID: "bev001", Name: "Premium Coffee Blend",
			Category: "beverages", Subcategory: "coffee", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(1299), OriginalPrice: models.MoneyFromCents(1599),
			Image:       "fas fa-coffee",
			Description: "Rich and aromatic coffee blend perfect for morning brewing. Made from premium beans.",
			Rating:      4.5, Stock: 45, IsNew: true, IsOnSale: true,
			Tags: []string{"organic", "premium", "hot-drink"},
		},
		{
			ID: "bev002", Name: "Fresh Orange Juice",
			Category: "beverages", Subcategory: "juice", Brand: "Organic Valley",
			Price: models.MoneyFromCents(499), OriginalPrice: models.MoneyFromCents(699),
			Image:       "fas fa-glass-whiskey",
			Description: "Freshly squeezed orange juice with pulp. 100% natural with no added sugar.",
			Rating:      4.3, Stock: 28, IsOnSale: true,
			Tags: []string{"fresh", "vitamin-c", "natural"},
		},
		{
			ID: "bev003", Name: "Green Tea Premium",
			Category: "beverages", Subcategory: "tea", Brand: "Premium Select",
			Price: models.MoneyFromCents(899), OriginalPrice: models.MoneyFromCents(1099),
			Image:       "fas fa-leaf",
			Description: "Premium green tea leaves with antioxidants. Perfect for relaxation and health.",
			Rating:      4.7, Stock: 35, IsNew: true,
			Tags: []string{"healthy", "antioxidants", "relaxing"},
		},
		{
			ID: "bev004", Name: "Energy Boost Drink",
			Category: "beverages", Subcategory: "energy", Brand: "QuickBasket",
			Price: models.MoneyFromCents(399), OriginalPrice: models.MoneyFromCents(499),
			Image:       "fas fa-bolt",
			Description: "Natural energy drink with vitamins and minerals. Sugar-free formula.",
			Rating:      4.1, Stock: 52, IsOnSale: true,
			Tags: []string{"energy", "vitamins", "sugar-free"},
		},

		// Chocolates & Sweets
		{
			ID: "choc001", Name: "Dark Chocolate Bar 85%",
			Category: "chocolates", Subcategory: "dark-chocolate", Brand: "Premium Select",
			Price: models.MoneyFromCents(899), OriginalPrice: models.MoneyFromCents(1099),
			Image:       "fas fa-square",
			Description: "Rich dark chocolate with 85% cocoa content. Perfect for chocolate lovers.",
			Rating:      4.8, Stock: 22, IsNew: true,
			Tags: []string{"premium", "dark", "antioxidants"},
		},
		{
			ID: "choc002", Name: "Milk Chocolate Cookies",
			Category: "chocolates", Subcategory: "cookies", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(699), OriginalPrice: models.MoneyFromCents(899),
			Image:       "fas fa-cookie",
			Description: "Crispy cookies with milk chocolate chips. Perfect for snacking.",
			Rating:      4.4, Stock: 38, IsOnSale: true,
			Tags: []string{"crispy", "sweet", "snack"},
		},
		{
			ID: "choc003", Name: "Assorted Candy Mix",
			Category: "chocolates", Subcategory: "candy", Brand: "QuickBasket",
			Price: models.MoneyFromCents(599), OriginalPrice: models.MoneyFromCents(799),
			Image:       "fas fa-candy-cane",
			Description: "Colorful assorted candy mix with various flavors. Kids favorite!",
			Rating:      4.2, Stock: 44, IsOnSale: true,
			Tags: []string{"colorful", "variety", "kids"},
		},

		// Dairy & Breads
		{
			ID: "dairy001", Name: "Organic Whole Milk",
			Category: "dairy", Subcategory: "milk", Brand: "Organic Valley",
			Price: models.MoneyFromCents(449), OriginalPrice: models.MoneyFromCents(599),
			Image:       "fas fa-glass-whiskey",
			Description: "Fresh organic whole milk from grass-fed cows. Rich in nutrients.",
			Rating:      4.6, Stock: 18, IsOnSale: true,
			Tags: []string{"organic", "fresh", "nutritious"},
		},
		{
			ID: "dairy002", Name: "Artisan Sourdough Bread",
			Category: "dairy", Subcategory: "bread", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(599), OriginalPrice: models.MoneyFromCents(799),
			Image:       "fas fa-bread-slice",
			Description: "Handcrafted sourdough bread with crispy crust and soft interior.",
			Rating:      4.7, Stock: 12, IsNew: true,
			Tags: []string{"artisan", "handcrafted", "crispy"},
		},
		{
			ID: "dairy003", Name: "Aged Cheddar Cheese",
			Category: "dairy", Subcategory: "cheese", Brand: "Premium Select",
			Price: models.MoneyFromCents(999), OriginalPrice: models.MoneyFromCents(1299),
			Image:       "fas fa-cheese",
			Description: "Sharp aged cheddar cheese with rich flavor. Perfect for sandwiches.",
			Rating:      4.5, Stock: 25, IsOnSale: true,
			Tags: []string{"aged", "sharp", "flavorful"},
		},

		// Fruits & Vegetables
		{
			ID: "fruit001", Name: "Organic Red Apples (1kg)",
			Category: "fruits", Subcategory: "fruits", Brand: "Organic Valley",
			Price: models.MoneyFromCents(599), OriginalPrice: models.MoneyFromCents(799),
			Image:       "fas fa-apple-alt",
			Description: "Fresh organic red apples. Crispy, sweet, and perfect for snacking.",
			Rating:      4.4, Stock: 33, IsOnSale: true,
			Tags: []string{"organic", "fresh", "crispy"},
		},
		{
			ID: "fruit002", Name: "Baby Spinach (200g)",
			Category: "fruits", Subcategory: "leafy-greens", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(399), OriginalPrice: models.MoneyFromCents(499),
			Image:       "fas fa-leaf",
			Description: "Fresh baby spinach leaves. Rich in iron and vitamins.",
			Rating:      4.3, Stock: 28, IsOnSale: true,
			Tags: []string{"fresh", "iron", "vitamins"},
		},
		{
			ID: "fruit003", Name: "Organic Carrots (500g)",
			Category: "fruits", Subcategory: "root-vegetables", Brand: "Organic Valley",
			Price: models.MoneyFromCents(299), OriginalPrice: models.MoneyFromCents(399),
			Image:       "fas fa-carrot",
			Description: "Fresh organic carrots. Sweet and crunchy, perfect for cooking or snacking.",
			Rating:      4.5, Stock: 41, IsOnSale: true,
			Tags: []string{"organic", "sweet", "crunchy"},
		},

		// Noodles & Pasta
		{
			ID: "noodle001", Name: "Instant Ramen Noodles",
			Category: "noodles", Subcategory: "instant", Brand: "QuickBasket",
			Price: models.MoneyFromCents(299), OriginalPrice: models.MoneyFromCents(399),
			Image:       "fas fa-bowl-rice",
			Description: "Quick cooking ramen noodles with flavorful seasoning. Ready in 3 minutes.",
			Rating:      4.0, Stock: 65, IsOnSale: true,
			Tags: []string{"quick", "flavorful", "convenient"},
		},
		{
			ID: "noodle002", Name: "Penne Pasta Premium",
			Category: "noodles", Subcategory: "pasta", Brand: "Premium Select",
			Price: models.MoneyFromCents(499), OriginalPrice: models.MoneyFromCents(699),
			Image:       "fas fa-utensils",
			Description: "Italian durum wheat penne pasta. Perfect al dente texture every time.",
			Rating:      4.6, Stock: 29, IsNew: true,
			Tags: []string{"italian", "durum-wheat", "al-dente"},
		},
		{
			ID: "noodle003", Name: "Tomato Pasta Sauce",
			Category: "noodles", Subcategory: "sauce", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(399), OriginalPrice: models.MoneyFromCents(599),
			Image:       "fas fa-bottle-droplet",
			Description: "Rich tomato pasta sauce with herbs and spices. No artificial preservatives.",
			Rating:      4.4, Stock: 37, IsOnSale: true,
			Tags: []string{"rich", "herbs", "natural"},
		},

		// Snacks & Namkeen
		{
			ID: "snack001", Name: "Crispy Potato Chips",
			Category: "snacks", Subcategory: "chips", Brand: "QuickBasket",
			Price: models.MoneyFromCents(349), OriginalPrice: models.MoneyFromCents(499),
			Image:       "fas fa-cookie-bite",
			Description: "Crispy golden potato chips with sea salt. Perfect movie night snack.",
			Rating:      4.2, Stock: 48, IsOnSale: true,
			Tags: []string{"crispy", "golden", "sea-salt"},
		},
		{
			ID: "snack002", Name: "Mixed Nuts Premium",
			Category: "snacks", Subcategory: "nuts", Brand: "Premium Select",
			Price: models.MoneyFromCents(999), OriginalPrice: models.MoneyFromCents(1299),
			Image:       "fas fa-seedling",
			Description: "Premium mix of almonds, cashews, walnuts, and pistachios. Healthy snacking.",
			Rating:      4.7, Stock: 22, IsNew: true,
			Tags: []string{"premium", "healthy", "protein"},
		},
		{
			ID: "snack003", Name: "Spicy Namkeen Mix",
			Category: "snacks", Subcategory: "namkeen", Brand: "Fresh Choice",
			Price: models.MoneyFromCents(499), OriginalPrice: models.MoneyFromCents(699),
			Image:       "fas fa-pepper-hot",
			Description: "Traditional spicy namkeen mix with peanuts, sev, and spices.",
			Rating:      4.3, Stock: 35, IsOnSale: true,
			Tags: []string{"spicy", "traditional", "peanuts"},
		},
	}
}

func catalogCategories() []models.Category {
	return []models.Category{
		{
			Key: "beverages", Name: "Beverages", Icon: "fas fa-coffee",
			Description: "Refresh yourself with our wide selection of beverages",
			Subcategories: map[string]string{
				"coffee": "Coffee & Tea",
				"juice":  "Juices",
				"tea":    "Tea",
				"energy": "Energy Drinks",
				"water":  "Water & Sports Drinks",
			},
		},
		{
			Key: "chocolates", Name: "Chocolates & Sweets", Icon: "fas fa-candy-cane",
			Description: "Indulge in our premium collection of chocolates and sweets",
			Subcategories: map[string]string{
				"dark-chocolate": "Dark Chocolate",
				"milk-chocolate": "Milk Chocolate",
				"cookies":        "Cookies & Biscuits",
				"candy":          "Candies",
				"desserts":       "Desserts",
			},
		},
		{
			Key: "dairy", Name: "Dairy & Breads", Icon: "fas fa-cheese",
			Description: "Fresh dairy products and bakery items",
			Subcategories: map[string]string{
				"milk":   "Milk & Dairy",
				"cheese": "Cheese",
				"bread":  "Bread & Bakery",
				"butter": "Butter & Spreads",
				"yogurt": "Yogurt",
			},
		},
		{
			Key: "fruits", Name: "Fruits & Vegetables", Icon: "fas fa-apple-alt",
			Description: "Farm-fresh fruits and vegetables",
			Subcategories: map[string]string{
				"fruits":          "Fresh Fruits",
				"leafy-greens":    "Leafy Greens",
				"root-vegetables": "Root Vegetables",
				"herbs":           "Herbs & Spices",
				"exotic":          "Exotic Fruits",
			},
		},
		{
			Key: "noodles", Name: "Noodles & Pasta", Icon: "fas fa-utensils",
			Description: "Quick and delicious meal solutions",
			Subcategories: map[string]string{
				"instant": "Instant Noodles",
				"pasta":   "Pasta",
				"asian":   "Asian Noodles",
				"sauce":   "Sauces",
				"ready":   "Ready Meals",
			},
		},
		{
			Key: "snacks", Name: "Snacks & Namkeen", Icon: "fas fa-cookie-bite",
			Description: "Crispy, crunchy, and delicious snacks",
			Subcategories: map[string]string{
				"chips":    "Chips & Crisps",
				"nuts":     "Nuts & Seeds",
				"namkeen":  "Traditional Namkeen",
				"crackers": "Crackers",
				"popcorn":  "Popcorn",
			},
		},
	}
}

func catalogBrands() []models.Brand {
	return []models.Brand{
		{Name: "Fresh Choice", Description: "Quality products for everyday needs", Logo: "fas fa-leaf"},
		{Name: "Organic Valley", Description: "Certified organic products", Logo: "fas fa-seedling"},
		{Name: "Premium Select", Description: "Premium quality at its finest", Logo: "fas fa-crown"},
		{Name: "QuickBasket", Description: "Our own brand of quality products", Logo: "fas fa-shopping-basket"},
	}
}
