package models

// DefaultAutoCategoryMap returns the seeded keyword table for the
// auto-categorizer. Users can extend it; stored entries win over these
// defaults on load, but new default keywords survive schema updates.
func DefaultAutoCategoryMap() map[string]Category {
	return map[string]Category{
		// Multi-word phrases. The categorizer tries longer keywords
		// first, so these beat their single-word parts.
		"movie ticket": CategoryEntertainment,
		"bus fare":     CategoryTransport,
		"metro card":   CategoryTransport,
		"phone bill":   CategoryRecharge,
		"ice cream":    CategoryFood,
		"cold drink":   CategoryFood,
		"pencil box":   CategoryStationery,
		"video game":   CategoryFun,
		"amazon prime": CategoryEntertainment,
		"geometry box": CategoryStationery,

		// Savings
		"savings": CategorySavings,
		"saved":   CategorySavings,
		"save":    CategorySavings,

		// Recharge
		"recharge": CategoryRecharge,
		"jio":      CategoryRecharge,
		"airtel":   CategoryRecharge,
		"vi":       CategoryRecharge,
		"vodafone": CategoryRecharge,

		// Food and drinks
		"samosa":    CategoryFood,
		"chai":      CategoryFood,
		"canteen":   CategoryFood,
		"pizza":     CategoryFood,
		"burger":    CategoryFood,
		"lunch":     CategoryFood,
		"dinner":    CategoryFood,
		"breakfast": CategoryFood,
		"snack":     CategoryFood,
		"snacks":    CategoryFood,
		"noodles":   CategoryFood,
		"maggi":     CategoryFood,
		"dosa":      CategoryFood,
		"biryani":   CategoryFood,
		"kfc":       CategoryFood,
		"mcdonalds": CategoryFood,
		"dominos":   CategoryFood,
		"subway":    CategoryFood,
		"pastry":    CategoryFood,
		"cake":      CategoryFood,
		"juice":     CategoryFood,
		"coffee":    CategoryFood,
		"tea":       CategoryFood,

		// Entertainment and fun
		"movie":       CategoryEntertainment,
		"game":        CategoryFun,
		"gaming":      CategoryFun,
		"playstation": CategoryFun,
		"xbox":        CategoryFun,
		"netflix":     CategoryEntertainment,
		"spotify":     CategoryEntertainment,
		"hotstar":     CategoryEntertainment,
		"concert":     CategoryEntertainment,
		"fair":        CategoryFun,
		"mela":        CategoryFun,
		"arcade":      CategoryFun,
		"bgmi":        CategoryFun,

		// Stationery
		"pen":       CategoryStationery,
		"book":      CategoryStationery,
		"notebook":  CategoryStationery,
		"register":  CategoryStationery,
		"xerox":     CategoryStationery,
		"photocopy": CategoryStationery,
		"print":     CategoryStationery,
		"notes":     CategoryStationery,

		// Transport
		"auto":     CategoryTransport,
		"bus":      CategoryTransport,
		"metro":    CategoryTransport,
		"ola":      CategoryTransport,
		"uber":     CategoryTransport,
		"rapido":   CategoryTransport,
		"rickshaw": CategoryTransport,
		"cab":      CategoryTransport,
		"taxi":     CategoryTransport,
		"train":    CategoryTransport,

		// Shopping, health and other
		"gift":     CategoryOther,
		"present":  CategoryOther,
		"medicine": CategoryOther,
		"pharmacy": CategoryOther,
		"clothes":  CategoryOther,
		"shoes":    CategoryOther,
		"t-shirt":  CategoryOther,
		"jeans":    CategoryOther,
	}
}
