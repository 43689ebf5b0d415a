package cache

// Fixed keys. Anything keyed by an entity id goes through one of the builders
// below instead of concatenating strings at the call site.
const (
	LatestProductsKey = "latest-products"
	CategoriesKey     = "categories"
	AllProductsKey    = "all-products"
	AllOrdersKey      = "all-orders"

	AdminStatsKey     = "admin-stats"
	AdminPieChartsKey = "admin-pie-charts"
	AdminBarChartsKey = "admin-bar-charts"
	AdminLineChartKey = "admin-line-chart"
)

// ProductKey is the key of a single cached product.
func ProductKey(id string) string {
	return "product-" + id
}

// OrderKey is the key of a single cached order.
func OrderKey(id string) string {
	return "order-" + id
}

// UserOrdersKey is the key of the cached order list of one user.
func UserOrdersKey(userID string) string {
	return "my-orders-" + userID
}
