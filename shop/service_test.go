package shop

import (
	"context"
	"testing"
	"time"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"storefront/shop/mocks/business/coupon_business"
	"storefront/shop/mocks/business/order_business"
	"storefront/shop/mocks/business/product_business"
	"storefront/shop/mocks/business/stats_business"
	"storefront/shop/mocks/business/user_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

const testAdminID = "admin-1"

type serviceMocks struct {
	products *product_business.MockBusiness
	orders   *order_business.MockBusiness
	users    *user_business.MockBusiness
	coupons  *coupon_business.MockBusiness
	stats    *stats_business.MockBusiness
	temporal *mocks.Client
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		products: product_business.NewMockBusiness(ctrl),
		orders:   order_business.NewMockBusiness(ctrl),
		users:    user_business.NewMockBusiness(ctrl),
		coupons:  coupon_business.NewMockBusiness(ctrl),
		stats:    stats_business.NewMockBusiness(ctrl),
		temporal: mocks.NewClient(t),
	}

	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })

	return &Service{
		products: m.products,
		orders:   m.orders,
		users:    m.users,
		coupons:  m.coupons,
		stats:    m.stats,
		temporal: m.temporal,

		pageSize:     8,
		taskQueue:    "storefront-orders-test",
		shipAfter:    48 * time.Hour,
		deliverAfter: 72 * time.Hour,
	}, m
}

func (m *serviceMocks) expectAdmin() {
	m.users.EXPECT().IsAdmin(gomock.Any(), testAdminID).Return(true, nil)
}
