package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/domain"
	"storefront/shop/mocks/domain/state_machine"
	"storefront/shop/mocks/repository/order_repo"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

func TestProcessOrder(t *testing.T) {
	testCases := []struct {
		name           string
		currentStatus  model.OrderStatus
		expectedStatus model.OrderStatus
		mockLockError  error
		mockUpdateErr  error
		expectedError  string
		expectUpdate   bool
	}{
		{
			name:           "processing_to_shipped",
			currentStatus:  model.OrderStatusProcessing,
			expectedStatus: model.OrderStatusShipped,
			expectUpdate:   true,
		},
		{
			name:           "shipped_to_delivered",
			currentStatus:  model.OrderStatusShipped,
			expectedStatus: model.OrderStatusDelivered,
			expectUpdate:   true,
		},
		{
			name:           "delivered_stays_delivered",
			currentStatus:  model.OrderStatusDelivered,
			expectedStatus: model.OrderStatusDelivered,
			expectUpdate:   true,
		},
		{
			name:          "order_not_found",
			mockLockError: &errs.Error{Code: errs.NotFound, Message: "order not found"},
			expectedError: "order not found",
		},
		{
			name:          "update_fails",
			currentStatus: model.OrderStatusProcessing,
			mockUpdateErr: errors.New("serialization failure"),
			expectedError: "failed to update order status",
			expectUpdate:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			mockOrderRepo := order_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{stateMachine: mockStateMachine, cache: c}

			mockStateMachine.EXPECT().
				GetOrderWithLock(gomock.Any(), "o1", gomock.Any()).
				DoAndReturn(func(ctx context.Context, orderID string, fn func(domain.Tx, orders.Order) error) error {
					if tc.mockLockError != nil {
						return tc.mockLockError
					}
					return fn(domain.Tx{Orders: mockOrderRepo}, orders.Order{ID: orderID, UserID: "u1", Status: string(tc.currentStatus)})
				})

			if tc.expectUpdate {
				mockOrderRepo.EXPECT().
					UpdateOrderStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg orders.UpdateOrderStatusParams) (orders.Order, error) {
						if tc.mockUpdateErr == nil {
							assert.Equal(t, string(tc.expectedStatus), arg.Status)
						}
						return orders.Order{ID: arg.ID, UserID: "u1", Status: arg.Status}, tc.mockUpdateErr
					})
			}

			result, err := business.ProcessOrder(context.Background(), "o1")

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, c.Has(cache.OrderKey("o1")))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.False(t, c.Has(cache.OrderKey("o1")))
			assert.False(t, c.Has(cache.UserOrdersKey("u1")))
			assert.False(t, c.Has(cache.AdminPieChartsKey))
			assert.True(t, c.Has(cache.OrderKey("o2")))
			assert.True(t, c.Has(cache.ProductKey("p1")))
		})
	}
}

func TestAdvanceOrder(t *testing.T) {
	testCases := []struct {
		name           string
		currentStatus  model.OrderStatus
		from           model.OrderStatus
		expectAdvanced bool
		expectedStatus model.OrderStatus
	}{
		{
			name:           "advances_from_expected_status",
			currentStatus:  model.OrderStatusProcessing,
			from:           model.OrderStatusProcessing,
			expectAdvanced: true,
			expectedStatus: model.OrderStatusShipped,
		},
		{
			name:           "already_moved_on_is_noop",
			currentStatus:  model.OrderStatusShipped,
			from:           model.OrderStatusProcessing,
			expectAdvanced: false,
		},
		{
			name:           "shipped_to_delivered",
			currentStatus:  model.OrderStatusShipped,
			from:           model.OrderStatusShipped,
			expectAdvanced: true,
			expectedStatus: model.OrderStatusDelivered,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			mockOrderRepo := order_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{stateMachine: mockStateMachine, cache: c}

			mockStateMachine.EXPECT().
				GetOrderWithLock(gomock.Any(), "o1", gomock.Any()).
				DoAndReturn(func(ctx context.Context, orderID string, fn func(domain.Tx, orders.Order) error) error {
					return fn(domain.Tx{Orders: mockOrderRepo}, orders.Order{ID: orderID, UserID: "u1", Status: string(tc.currentStatus)})
				})

			if tc.expectAdvanced {
				mockOrderRepo.EXPECT().
					UpdateOrderStatus(gomock.Any(), orders.UpdateOrderStatusParams{ID: "o1", Status: string(tc.expectedStatus)}).
					Return(orders.Order{ID: "o1", UserID: "u1", Status: string(tc.expectedStatus)}, nil)
			}

			advanced, err := business.AdvanceOrder(context.Background(), "o1", tc.from)

			require.NoError(t, err)
			assert.Equal(t, tc.expectAdvanced, advanced)
			assert.Equal(t, !tc.expectAdvanced, c.Has(cache.OrderKey("o1")))
			assert.Equal(t, !tc.expectAdvanced, c.Has(cache.AdminStatsKey))
		})
	}
}
