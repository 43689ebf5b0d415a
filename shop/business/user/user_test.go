package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/shop/cache"
	"storefront/shop/mocks/repository/order_repo"
	"storefront/shop/mocks/repository/user_repo"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/users"
)

func seededCache() *cache.Cache {
	c := cache.New()
	for _, key := range []string{cache.AdminStatsKey, cache.AdminPieChartsKey, cache.AdminBarChartsKey, cache.AdminLineChartKey, cache.AllProductsKey} {
		c.Set(key, "{}")
	}
	return c
}

func TestCreateUser(t *testing.T) {
	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	input := &model.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Photo: "ada.png", Gender: model.GenderFemale, DOB: dob}

	testCases := []struct {
		name             string
		mockGetError     error
		mockCreateError  error
		expectCreate     bool
		expectedCreated  bool
		expectedError    string
		expectInvalidate bool
	}{
		{
			name:             "new_user",
			mockGetError:     pgx.ErrNoRows,
			expectCreate:     true,
			expectedCreated:  true,
			expectInvalidate: true,
		},
		{
			name:            "existing_user_is_returned",
			mockGetError:    nil,
			expectedCreated: false,
		},
		{
			name:          "lookup_fails",
			mockGetError:  errors.New("connection reset"),
			expectedError: "failed to get user",
		},
		{
			name:            "duplicate_email",
			mockGetError:    pgx.ErrNoRows,
			expectCreate:    true,
			mockCreateError: &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError:   "email is already registered",
		},
		{
			name:            "create_fails",
			mockGetError:    pgx.ErrNoRows,
			expectCreate:    true,
			mockCreateError: errors.New("disk full"),
			expectedError:   "failed to create user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := user_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{userRepo: mockUserRepo, cache: c}

			mockUserRepo.EXPECT().
				GetUser(gomock.Any(), "u1").
				Return(users.User{ID: "u1", Name: "Ada", Role: "user"}, tc.mockGetError)

			if tc.expectCreate {
				mockUserRepo.EXPECT().
					CreateUser(gomock.Any(), users.CreateUserParams{
						ID:     "u1",
						Name:   "Ada",
						Email:  "ada@example.com",
						Photo:  "ada.png",
						Role:   "user",
						Gender: "female",
						Dob:    pgtype.Date{Time: dob, Valid: true},
					}).
					Return(users.User{ID: "u1", Name: "Ada", Role: "user", Gender: "female", Dob: pgtype.Date{Time: dob, Valid: true}}, tc.mockCreateError)
			}

			result, created, err := business.CreateUser(context.Background(), input)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, c.Has(cache.AdminStatsKey))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", result.ID)
			assert.Equal(t, tc.expectedCreated, created)
			assert.Equal(t, !tc.expectInvalidate, c.Has(cache.AdminStatsKey))
			assert.True(t, c.Has(cache.AllProductsKey))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	testCases := []struct {
		name          string
		mockUser      users.User
		mockError     error
		expected      bool
		expectedError string
	}{
		{
			name:     "admin",
			mockUser: users.User{ID: "u1", Role: "admin"},
			expected: true,
		},
		{
			name:     "customer",
			mockUser: users.User{ID: "u1", Role: "user"},
			expected: false,
		},
		{
			name:          "unknown_user",
			mockError:     pgx.ErrNoRows,
			expectedError: "user not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := user_repo.NewMockQuerier(ctrl)
			business := &business{userRepo: mockUserRepo, cache: cache.New()}

			mockUserRepo.EXPECT().GetUser(gomock.Any(), "u1").Return(tc.mockUser, tc.mockError)

			isAdmin, err := business.IsAdmin(context.Background(), "u1")

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, isAdmin)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	testCases := []struct {
		name          string
		mockOrders    []orders.Order
		mockListError error
		mockError     error
		expectDelete  bool
		expectedError string
	}{
		{
			name:         "happy_case",
			mockOrders:   []orders.Order{{ID: "o1", UserID: "u1"}, {ID: "o2", UserID: "u1"}},
			expectDelete: true,
		},
		{
			name:         "user_without_orders",
			expectDelete: true,
		},
		{
			name:          "listing_orders_fails",
			mockListError: errors.New("boom"),
			expectedError: "failed to delete user",
		},
		{
			name:          "user_not_found",
			mockError:     pgx.ErrNoRows,
			expectDelete:  true,
			expectedError: "user not found",
		},
		{
			name:          "database_error",
			mockError:     errors.New("boom"),
			expectDelete:  true,
			expectedError: "failed to delete user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := user_repo.NewMockQuerier(ctrl)
			mockOrderRepo := order_repo.NewMockQuerier(ctrl)
			c := seededCache()
			for _, key := range []string{
				cache.AllOrdersKey, cache.UserOrdersKey("u1"), cache.UserOrdersKey("u2"),
				cache.OrderKey("o1"), cache.OrderKey("o2"), cache.OrderKey("o3"),
			} {
				c.Set(key, "{}")
			}
			business := &business{userRepo: mockUserRepo, orderRepo: mockOrderRepo, cache: c}

			mockOrderRepo.EXPECT().ListOrdersByUser(gomock.Any(), "u1").Return(tc.mockOrders, tc.mockListError)
			if tc.expectDelete {
				mockUserRepo.EXPECT().DeleteUser(gomock.Any(), "u1").Return(users.User{ID: "u1"}, tc.mockError)
			}

			err := business.DeleteUser(context.Background(), "u1")

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, c.Has(cache.AdminBarChartsKey))
				assert.True(t, c.Has(cache.AllOrdersKey))
				return
			}

			require.NoError(t, err)
			assert.False(t, c.Has(cache.AdminBarChartsKey))
			assert.False(t, c.Has(cache.AllOrdersKey))
			assert.False(t, c.Has(cache.UserOrdersKey("u1")))
			for _, o := range tc.mockOrders {
				assert.False(t, c.Has(cache.OrderKey(o.ID)), o.ID)
			}
			assert.True(t, c.Has(cache.OrderKey("o3")))
			assert.True(t, c.Has(cache.UserOrdersKey("u2")))
			assert.True(t, c.Has(cache.AllProductsKey))
		})
	}
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := user_repo.NewMockQuerier(ctrl)
	business := &business{userRepo: mockUserRepo, cache: cache.New()}

	mockUserRepo.EXPECT().ListUsers(gomock.Any()).Return([]users.User{
		{ID: "u2", Role: "admin", Gender: "male"},
		{ID: "u1", Role: "user", Gender: "female"},
	}, nil)

	result, err := business.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, model.RoleAdmin, result[0].Role)
	assert.Equal(t, model.GenderFemale, result[1].Gender)
}
