package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/model"
)

func (b *business) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	dbCoupons, err := b.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list coupons"}
	}

	result := make([]model.Coupon, 0, len(dbCoupons))
	for _, c := range dbCoupons {
		result = append(result, convertDBCouponToModel(c))
	}
	return result, nil
}

func (b *business) DeleteCoupon(ctx context.Context, id string) error {
	if _, err := b.couponRepo.DeleteCoupon(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "coupon not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to delete coupon"}
	}
	return nil
}
