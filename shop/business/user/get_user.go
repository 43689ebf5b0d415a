package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/model"
)

func (b *business) GetUser(ctx context.Context, id string) (*model.User, error) {
	dbUser, err := b.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get user"}
	}

	user := convertDBUserToModel(dbUser)
	return &user, nil
}

// ListUsers returns every registered user, newest first.
func (b *business) ListUsers(ctx context.Context) ([]model.User, error) {
	dbUsers, err := b.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list users"}
	}

	result := make([]model.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		result = append(result, convertDBUserToModel(u))
	}
	return result, nil
}

// IsAdmin reports whether id belongs to a user with the admin role. Unknown
// ids are reported as NotFound.
func (b *business) IsAdmin(ctx context.Context, id string) (bool, error) {
	user, err := b.GetUser(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Role == model.RoleAdmin, nil
}
