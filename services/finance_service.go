package services

import (
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"
)

type FinanceService struct {
	Repo  *repository.FinanceRepository
	Authz *Authorizer

	TopLimit       int // restaurant finance view
	DashboardLimit int // dashboard widget
}

func NewFinanceService(repo *repository.FinanceRepository, authz *Authorizer, topLimit, dashboardLimit int) *FinanceService {
	if topLimit <= 0 {
		topLimit = 10
	}
	if dashboardLimit <= 0 {
		dashboardLimit = 6
	}
	return &FinanceService{Repo: repo, Authz: authz, TopLimit: topLimit, DashboardLimit: dashboardLimit}
}

type FinancialSummary struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	OrderCount     int64 `json:"orderCount"`
	PendingCount   int64 `json:"pendingCount"`
	CompletedCount int64 `json:"completedCount"`
	CancelledCount int64 `json:"cancelledCount"`

	TotalRevenue   int64 `json:"totalRevenue"`   // DELIVERED only
	PendingRevenue int64 `json:"pendingRevenue"` // RECEIVED..DELIVERING

	AverageOrderValue int64 `json:"averageOrderValue"`

	Daily []repository.DailyPoint `json:"daily"`
}

// Summary aggregates orders over an inclusive [from, to] day range.
// restID 0 is the platform-wide view and is admin-only.
func (s *FinanceService) Summary(actor Actor, restID uint, from, to time.Time) (*FinancialSummary, error) {
	if restID == 0 {
		if !actor.IsAdmin() {
			return nil, apperr.Forbidden("forbidden")
		}
	} else if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperr.Validation("invalid date range")
	}
	toExcl := day(to).AddDate(0, 0, 1)
	from = day(from)

	out := &FinancialSummary{From: from, To: to}
	var err error

	if out.OrderCount, err = s.Repo.CountAll(restID, from, toExcl); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.PendingCount, err = s.Repo.CountByStatuses(restID, from, toExcl, entity.PendingStatuses); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.CompletedCount, err = s.Repo.CountByStatuses(restID, from, toExcl, []entity.OrderStatus{entity.StatusDelivered}); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.CancelledCount, err = s.Repo.CountByStatuses(restID, from, toExcl, []entity.OrderStatus{entity.StatusCancelled}); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.TotalRevenue, err = s.Repo.SumByStatuses(restID, from, toExcl, []entity.OrderStatus{entity.StatusDelivered}); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.PendingRevenue, err = s.Repo.SumByStatuses(restID, from, toExcl, entity.PendingStatuses); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.CompletedCount > 0 {
		out.AverageOrderValue = out.TotalRevenue / out.CompletedCount
	}
	if out.Daily, err = s.Repo.DailySeries(restID, from, toExcl); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

// TopProducts ranks products of delivered orders by quantity sold. limit 0
// falls back to the configured default.
func (s *FinanceService) TopProducts(actor Actor, restID uint, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	if restID == 0 {
		if !actor.IsAdmin() {
			return nil, apperr.Forbidden("forbidden")
		}
	} else if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.TopLimit
	}
	out, err := s.Repo.TopProducts(restID, day(from), day(to).AddDate(0, 0, 1), limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

type AdminDashboard struct {
	TotalUsers       int64                   `json:"totalUsers"`
	TotalRestaurants int64                   `json:"totalRestaurants"`
	TotalOrders      int64                   `json:"totalOrders"`
	OrdersToday      int64                   `json:"ordersToday"`
	TopProducts      []repository.TopProduct `json:"topProducts"`
}

func (s *FinanceService) Dashboard(actor Actor) (*AdminDashboard, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("forbidden")
	}

	out := &AdminDashboard{}
	var err error
	if out.TotalUsers, err = s.Repo.CountUsers(); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.TotalRestaurants, err = s.Repo.CountRestaurants(); err != nil {
		return nil, apperr.Storage(err)
	}
	if out.TotalOrders, err = s.Repo.CountOrders(); err != nil {
		return nil, apperr.Storage(err)
	}
	today := day(time.Now())
	if out.OrdersToday, err = s.Repo.CountOrdersSince(today); err != nil {
		return nil, apperr.Storage(err)
	}
	// widget covers the trailing 30 days
	if out.TopProducts, err = s.Repo.TopProducts(0, today.AddDate(0, 0, -30), today.AddDate(0, 0, 1), s.DashboardLimit); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
