package user

import (
	"context"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/users"
)

type Business interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, bool, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error

	IsAdmin(ctx context.Context, id string) (bool, error)
}

type business struct {
	userRepo users.Querier
	// orderRepo finds the orders whose cached reads carry the user's name
	orderRepo orders.Querier
	cache     *cache.Cache
}

// NewUserBusiness creates a new user business layer
func NewUserBusiness(userRepo users.Querier, orderRepo orders.Querier, c *cache.Cache) Business {
	return &business{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		cache:     c,
	}
}

func convertDBUserToModel(dbUser users.User) model.User {
	return model.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		Photo:     dbUser.Photo,
		Role:      model.Role(dbUser.Role),
		Gender:    model.Gender(dbUser.Gender),
		DOB:       dbUser.Dob.Time,
		CreatedAt: dbUser.CreatedAt.Time,
		UpdatedAt: dbUser.UpdatedAt.Time,
	}
}
