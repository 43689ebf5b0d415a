package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
)

// ApplyDiscount returns the amount taken off an order by code.
func (b *business) ApplyDiscount(ctx context.Context, code string) (int64, error) {
	dbCoupon, err := b.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid coupon code"}
		}
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to get coupon"}
	}

	return dbCoupon.Amount, nil
}
