package shop

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/model"
)

type CreateUserRequest struct {
	ID     string       `json:"id" validate:"required"`
	Name   string       `json:"name" validate:"required,max=255"`
	Email  string       `json:"email" validate:"required,email"`
	Photo  string       `json:"photo" validate:"required,url"`
	Gender model.Gender `json:"gender" validate:"required,oneof=male female"`
	DOB    time.Time    `json:"dob" validate:"required"`
}

type CreateUserResponse struct {
	User model.User `json:"user"`
	// Created is false when the id was already registered
	Created bool `json:"created"`
}

type UserResponse struct {
	User model.User `json:"user"`
}

type UsersResponse struct {
	Users []model.User `json:"users"`
}

//encore:api public path=/v1/users method=POST
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	result, created, err := s.users.CreateUser(ctx, &model.User{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Gender: req.Gender,
		DOB:    req.DOB,
	})
	if err != nil {
		rlog.Error("failed to create user", "error", err, "id", req.ID)
		return nil, err
	}

	return &CreateUserResponse{
		User:    *result,
		Created: created,
	}, nil
}

//encore:api public path=/v1/users method=GET
func (s *Service) ListUsers(ctx context.Context, req *AdminRequest) (*UsersResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.users.ListUsers(ctx)
	if err != nil {
		rlog.Error("failed to list users", "error", err)
		return nil, err
	}
	return &UsersResponse{Users: result}, nil
}

//encore:api public path=/v1/users/:id method=GET
func (s *Service) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	result, err := s.users.GetUser(ctx, id)
	if err != nil {
		rlog.Error("failed to get user", "error", err, "id", id)
		return nil, err
	}
	return &UserResponse{User: *result}, nil
}

//encore:api public path=/v1/users/:id method=DELETE
func (s *Service) DeleteUser(ctx context.Context, id string, req *AdminRequest) error {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, id); err != nil {
		rlog.Error("failed to delete user", "error", err, "id", id)
		return err
	}
	return nil
}

func (r *CreateUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	if r.DOB.After(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "dob must be in the past"}
	}
	return nil
}
