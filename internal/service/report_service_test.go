package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"poppys/internal/model"
)

// reports are tested with a nil cache client, which degrades every lookup to
// a miss; the fail-safe path is the interesting one since redis is optional.

func TestReportService_OrderStatusCounts(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockOrders.On("CountByStatus", mock.Anything).Return([]model.StatusCount{
		{Status: "pending", Count: 3},
		{Status: "shipped", Count: 1},
	}, nil)

	svc := NewReportService(mockOrders, mockUsers, nil)

	rows, err := svc.OrderStatusCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].Count)

	mockOrders.AssertExpectations(t)
}

func TestReportService_MonthlyRegistrations(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("CountByMonth", mock.Anything).Return([]model.MonthCount{
		{Month: "2026-07", Count: 5},
		{Month: "2026-08", Count: 2},
	}, nil)

	svc := NewReportService(mockOrders, mockUsers, nil)

	rows, err := svc.MonthlyRegistrations(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-07", rows[0].Month)
}

func TestReportService_WeeklyRegistrations_StoreFailure(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("CountByWeek", mock.Anything).Return(nil, assert.AnError)

	svc := NewReportService(mockOrders, mockUsers, nil)

	rows, err := svc.WeeklyRegistrations(context.Background())
	assert.Error(t, err)
	assert.Nil(t, rows)
}
