package service

import (
	"context"
	"encoding/json"
	"time"

	"poppys/internal/cache"
	"poppys/internal/model"
	"poppys/internal/repository"
)

const reportCacheTTL = time.Minute

// ReportService exposes the aggregation-backed reporting reads. Results are
// cached briefly in redis; the cache holds aggregates only, never records,
// and a dead redis degrades to direct store reads.
type ReportService interface {
	OrderStatusCounts(ctx context.Context) ([]model.StatusCount, error)
	MonthlyRegistrations(ctx context.Context) ([]model.MonthCount, error)
	WeeklyRegistrations(ctx context.Context) ([]model.WeekCount, error)
}

type reportService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	cache  *cache.Client
}

// NewReportService builds a ReportService.
func NewReportService(orders repository.OrderRepository, users repository.UserRepository, cache *cache.Client) ReportService {
	return &reportService{orders: orders, users: users, cache: cache}
}

func (s *reportService) OrderStatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	return cached(ctx, s.cache, "report:order-status", func() ([]model.StatusCount, error) {
		return s.orders.CountByStatus(ctx)
	})
}

func (s *reportService) MonthlyRegistrations(ctx context.Context) ([]model.MonthCount, error) {
	return cached(ctx, s.cache, "report:monthly-registrations", func() ([]model.MonthCount, error) {
		return s.users.CountByMonth(ctx)
	})
}

func (s *reportService) WeeklyRegistrations(ctx context.Context) ([]model.WeekCount, error) {
	return cached(ctx, s.cache, "report:weekly-registrations", func() ([]model.WeekCount, error) {
		return s.users.CountByWeek(ctx)
	})
}

// cached runs query with a cache-aside lookup under key.
func cached[T any](ctx context.Context, c *cache.Client, key string, query func() ([]T, error)) ([]T, error) {
	if data := c.Get(ctx, key); data != nil {
		var rows []T
		if err := json.Unmarshal(data, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := query()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		c.Set(ctx, key, payload, reportCacheTTL)
	}
	return rows, nil
}
