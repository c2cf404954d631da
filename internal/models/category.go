package models

// Category is a spending category. It is a closed enumeration: values
// outside the list below are rejected at the input boundary.
//
// CategorySavings is special: an expense tagged with it records money
// set aside for the savings goal, not money spent on goods.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryRecharge      Category = "Recharge"
	CategoryStationery    Category = "Stationery"
	CategoryEntertainment Category = "Entertainment"
	CategoryFun           Category = "Fun"
	CategoryTransport     Category = "Transport"
	CategorySavings       Category = "Savings"
	CategoryOther         Category = "Other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryRecharge,
		CategoryStationery,
		CategoryEntertainment,
		CategoryFun,
		CategoryTransport,
		CategorySavings,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryRecharge, CategoryStationery, CategoryEntertainment,
		CategoryFun, CategoryTransport, CategorySavings, CategoryOther:
		return true
	}

	return false
}

// IncomeSource labels where the recurring pocket money comes from.
type IncomeSource string

const (
	IncomeSourceMonthly     IncomeSource = "Monthly Income"
	IncomeSourcePocketMoney IncomeSource = "Pocket Money"
	IncomeSourceAllowance   IncomeSource = "Allowance"
	IncomeSourcePartTimeJob IncomeSource = "Part-Time Job"
	IncomeSourceGift        IncomeSource = "Gift"
	IncomeSourceOther       IncomeSource = "Other"
)

// Valid reports whether the income source is one of the known labels.
func (s IncomeSource) Valid() bool {
	switch s {
	case IncomeSourceMonthly, IncomeSourcePocketMoney, IncomeSourceAllowance,
		IncomeSourcePartTimeJob, IncomeSourceGift, IncomeSourceOther:
		return true
	}

	return false
}

// Theme is the UI color scheme preference stored for the client.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether the theme is one of the known values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}
