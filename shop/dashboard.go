package shop

import (
	"context"

	"encore.dev/rlog"

	"storefront/shop/model"
)

//encore:api public path=/v1/dashboard/stats method=GET
func (s *Service) DashboardStats(ctx context.Context, req *AdminRequest) (*model.DashboardStats, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.stats.DashboardStats(ctx)
	if err != nil {
		rlog.Error("failed to get dashboard stats", "error", err)
		return nil, err
	}
	return result, nil
}

//encore:api public path=/v1/dashboard/pie method=GET
func (s *Service) PieCharts(ctx context.Context, req *AdminRequest) (*model.PieCharts, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.stats.PieCharts(ctx)
	if err != nil {
		rlog.Error("failed to get pie charts", "error", err)
		return nil, err
	}
	return result, nil
}

//encore:api public path=/v1/dashboard/bar method=GET
func (s *Service) BarCharts(ctx context.Context, req *AdminRequest) (*model.BarCharts, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.stats.BarCharts(ctx)
	if err != nil {
		rlog.Error("failed to get bar charts", "error", err)
		return nil, err
	}
	return result, nil
}

//encore:api public path=/v1/dashboard/line method=GET
func (s *Service) LineCharts(ctx context.Context, req *AdminRequest) (*model.LineCharts, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.stats.LineCharts(ctx)
	if err != nil {
		rlog.Error("failed to get line charts", "error", err)
		return nil, err
	}
	return result, nil
}
