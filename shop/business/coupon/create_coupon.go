package coupon

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"storefront/shop/model"
	"storefront/shop/repository/coupons"
)

func (b *business) CreateCoupon(ctx context.Context, code string, amount int64) (*model.Coupon, error) {
	dbCoupon, err := b.couponRepo.CreateCoupon(ctx, coupons.CreateCouponParams{
		ID:     uuid.NewString(),
		Code:   code,
		Amount: amount,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "coupon code already exists"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create coupon"}
	}

	coupon := convertDBCouponToModel(dbCoupon)
	return &coupon, nil
}
