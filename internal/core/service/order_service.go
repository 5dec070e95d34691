package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// OrderService implements order use cases. Every read and mutation is gated
// by the domain authorization policy before the repository is touched; the
// policy's Decision is handled exhaustively so no outcome can be ignored.
type OrderService struct {
	repo   ports.OrderRepository
	plants ports.PlantRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, plants ports.PlantRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, plants: plants, logger: logger}
}

// List returns the orders visible to actor: clients get only their own,
// admin and employee get everything.
func (s *OrderService) List(ctx context.Context, actor domain.Principal) ([]domain.Order, error) {
	switch actor.Role {
	case domain.RoleClient:
		return s.repo.ListByClient(ctx, actor.ID)
	case domain.RoleAdmin, domain.RoleEmployee:
		return s.repo.ListAll(ctx)
	}
	return nil, domain.ErrForbidden
}

// Get fetches a single order, keeping "absent" and "not yours" distinct:
// missing orders yield ErrOrderNotFound, visible-but-foreign orders yield
// ErrForbidden.
func (s *OrderService) Get(ctx context.Context, actor domain.Principal, id int64) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch domain.AuthorizeView(actor, order) {
	case domain.DecisionAllowed:
		return order, nil
	case domain.DecisionDenied:
		return nil, domain.ErrForbidden
	case domain.DecisionNotFound:
		return nil, domain.ErrOrderNotFound
	}
	return nil, domain.ErrForbidden
}

// Create places a new pending order owned by actor.
func (s *OrderService) Create(ctx context.Context, actor domain.Principal, input ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		ClientID:  actor.ID,
		Status:    domain.StatusPending,
		Items:     input.Items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", actor.ID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Int64("order_id", created.ID).Int64("client_id", actor.ID).Msg("order created")
	return created, nil
}

// UpdateStatus applies a status change when the authorization policy allows
// it. The write happens only after an explicit DecisionAllowed.
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.Principal, id int64, target domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := domain.AuthorizeStatusChange(actor, order, target)
	s.logger.Debug().
		Int64("order_id", id).
		Int64("actor_id", actor.ID).
		Str("role", string(actor.Role)).
		Str("target", string(target)).
		Str("decision", decision.String()).
		Msg("order status change evaluated")

	switch decision {
	case domain.DecisionAllowed:
		return s.repo.UpdateStatus(ctx, id, target)
	case domain.DecisionDenied:
		return nil, domain.ErrForbidden
	case domain.DecisionNotFound:
		return nil, domain.ErrOrderNotFound
	}
	return nil, domain.ErrForbidden
}
