package admin

import (
	"context"
	"fmt"

	"baratie/domain"
	"baratie/internal/utils"

	"github.com/rs/zerolog"
)

type (
	AdminService interface {
		GetOverview(ctx context.Context, date string) (domain.OverviewResponse, error)
		GetDashboardData(ctx context.Context, date string) (domain.DashboardDataResponse, error)
	}

	adminService struct {
		adminRepository AdminRepository
		logger          zerolog.Logger
	}
)

func NewAdminService(adminRepository AdminRepository) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		logger:          utils.NewLogger("admin"),
	}
}

func (s *adminService) GetOverview(ctx context.Context, date string) (domain.OverviewResponse, error) {
	from, until, err := DayWindow(date)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	orders, err := s.adminRepository.GetOrdersInWindow(ctx, from, until)
	if err != nil {
		return domain.OverviewResponse{}, fmt.Errorf("load orders for %s: %w", date, err)
	}

	employees, err := s.adminRepository.GetEmployeesByIDs(ctx, employeeIDs(orders))
	if err != nil {
		return domain.OverviewResponse{}, fmt.Errorf("load employees: %w", err)
	}

	sum := summarize(orders)
	s.logger.Debug().Str("date", date).Int("orders", sum.orders).Msg("overview computed")

	return domain.OverviewResponse{
		TotalRevenue:   sum.revenue.Round(2),
		TotalOrders:    sum.orders,
		TopSoldItems:   topSoldItems(sum.items, domain.TopSoldItemsLimit),
		DetailedOrders: detailedOrders(orders, employees),
	}, nil
}

func (s *adminService) GetDashboardData(ctx context.Context, date string) (domain.DashboardDataResponse, error) {
	from, until, err := DayWindow(date)
	if err != nil {
		return domain.DashboardDataResponse{}, err
	}

	orders, err := s.adminRepository.GetOrdersInWindow(ctx, from, until)
	if err != nil {
		return domain.DashboardDataResponse{}, fmt.Errorf("load orders for %s: %w", date, err)
	}

	sum := summarize(orders)
	return domain.DashboardDataResponse{
		RevenueData: []domain.RevenueSeries{{
			ID:   "revenue",
			Data: []domain.RevenuePoint{{X: from.Format(dateLayout), Y: sum.revenue.Round(2)}},
		}},
		MostSoldItemsData: sum.items,
	}, nil
}
