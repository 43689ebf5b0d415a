package shop

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// AdminRequest identifies the caller of an admin-only endpoint.
type AdminRequest struct {
	AdminID string `query:"admin_id"`
}

// requireAdmin fails unless id names an existing admin user.
func (s *Service) requireAdmin(ctx context.Context, id string) error {
	if id == "" {
		return &errs.Error{Code: errs.Unauthenticated, Message: "login required"}
	}

	isAdmin, err := s.users.IsAdmin(ctx, id)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			return &errs.Error{Code: errs.Unauthenticated, Message: "invalid user id"}
		}
		rlog.Error("failed to check admin", "error", err, "user_id", id)
		return err
	}
	if !isAdmin {
		return &errs.Error{Code: errs.PermissionDenied, Message: "admin access required"}
	}

	return nil
}
