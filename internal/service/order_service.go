package service

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"poppys/internal/model"
	"poppys/internal/repository"
)

// OrderService exposes order operations. Every method is reachable only
// through the access gate.
type OrderService interface {
	// Create stores a new order for the verified caller. UserEmail is stamped
	// from identityEmail; any value already present on the order is discarded.
	Create(ctx context.Context, identityEmail string, order *model.Order) (*model.Order, error)
	Get(ctx context.Context, id bson.ObjectID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// ListForUser returns the caller's own orders, keyed by the verified
	// identity email rather than any client-supplied parameter.
	ListForUser(ctx context.Context, identityEmail string) ([]model.Order, error)
	Update(ctx context.Context, id bson.ObjectID, params repository.UpdateOrderParams) (*model.Order, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService builds an OrderService.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, identityEmail string, order *model.Order) (*model.Order, error) {
	order.ID = bson.ObjectID{}
	order.UserEmail = identityEmail
	order.Reference = uuid.NewString()
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id bson.ObjectID) (*model.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

func (s *orderService) ListForUser(ctx context.Context, identityEmail string) ([]model.Order, error) {
	return s.repo.ListByUserEmail(ctx, identityEmail)
}

func (s *orderService) Update(ctx context.Context, id bson.ObjectID, params repository.UpdateOrderParams) (*model.Order, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *orderService) Delete(ctx context.Context, id bson.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
