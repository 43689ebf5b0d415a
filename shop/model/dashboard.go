package model

// CategoryShare maps one category name to its rounded percentage of all
// products. A distribution is a list of single-entry shares.
type CategoryShare map[string]int64

// DashboardStats is the cached overview snapshot.
type DashboardStats struct {
	CategoryCount      []CategoryShare `json:"category_count"`
	ChangePercent      MetricSet       `json:"change_percent"`
	Count              MetricSet       `json:"count"`
	Chart              OrderChart      `json:"chart"`
	UserRatio          UserRatio       `json:"user_ratio"`
	LatestTransactions []Transaction   `json:"latest_transactions"`
}

type MetricSet struct {
	Revenue int64 `json:"revenue"`
	Product int64 `json:"product"`
	User    int64 `json:"user"`
	Order   int64 `json:"order"`
}

type OrderChart struct {
	Order   []int64 `json:"order"`
	Revenue []int64 `json:"revenue"`
}

type UserRatio struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

type Transaction struct {
	ID       string      `json:"id"`
	Discount int64       `json:"discount"`
	Amount   int64       `json:"amount"`
	Quantity int         `json:"quantity"`
	Status   OrderStatus `json:"status"`
}

// PieCharts is the cached distribution snapshot.
type PieCharts struct {
	OrderFulfillment    OrderFulfillment    `json:"order_fulfillment"`
	ProductCategories   []CategoryShare     `json:"product_categories"`
	StockAvailability   StockAvailability   `json:"stock_availability"`
	RevenueDistribution RevenueDistribution `json:"revenue_distribution"`
	AdminCustomer       AdminCustomer       `json:"admin_customer"`
	UsersAgeGroup       UsersAgeGroup       `json:"users_age_group"`
}

type OrderFulfillment struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
}

type StockAvailability struct {
	InStock    int64 `json:"in_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}

type RevenueDistribution struct {
	NetMargin      int64 `json:"net_margin"`
	Discount       int64 `json:"discount"`
	ProductionCost int64 `json:"production_cost"`
	Burnt          int64 `json:"burnt"`
	MarketingCost  int64 `json:"marketing_cost"`
}

type AdminCustomer struct {
	Admin    int64 `json:"admin"`
	Customer int64 `json:"customer"`
}

type UsersAgeGroup struct {
	Teen  int64 `json:"teen"`
	Adult int64 `json:"adult"`
	Old   int64 `json:"old"`
}

// BarCharts is the cached creation-count snapshot.
type BarCharts struct {
	Users    []int64 `json:"users"`
	Products []int64 `json:"products"`
	Orders   []int64 `json:"orders"`
}

// LineCharts is the cached twelve month trend snapshot.
type LineCharts struct {
	Users    []int64 `json:"users"`
	Products []int64 `json:"products"`
	Discount []int64 `json:"discount"`
	Revenue  []int64 `json:"revenue"`
}
