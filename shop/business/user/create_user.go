package user

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/users"
)

// CreateUser registers a user under the id issued by the identity provider.
// When the id is already registered the stored user is returned and the
// second result is false.
func (b *business) CreateUser(ctx context.Context, user *model.User) (*model.User, bool, error) {
	existing, err := b.userRepo.GetUser(ctx, user.ID)
	if err == nil {
		found := convertDBUserToModel(existing)
		return &found, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to get user"}
	}

	role := user.Role
	if role == "" {
		role = model.RoleUser
	}

	dbUser, err := b.userRepo.CreateUser(ctx, users.CreateUserParams{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Photo:  user.Photo,
		Role:   string(role),
		Gender: string(user.Gender),
		Dob:    pgtype.Date{Time: user.DOB, Valid: true},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, false, &errs.Error{Code: errs.AlreadyExists, Message: "email is already registered"}
		}
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to create user"}
	}

	b.cache.Invalidate(cache.Event{Admin: true})

	created := convertDBUserToModel(dbUser)
	return &created, true, nil
}
