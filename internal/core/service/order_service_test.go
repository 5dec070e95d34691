package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newStubOrderRepo(seed ...*domain.Order) *stubOrderRepo {
	r := &stubOrderRepo{orders: make(map[int64]*domain.Order)}
	for _, o := range seed {
		r.orders[o.ID] = o
		if o.ID > r.nextID {
			r.nextID = o.ID
		}
	}
	return r
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	created := *o
	created.ID = r.nextID
	r.orders[created.ID] = &created
	return &created, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByClient(_ context.Context, clientID int64) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.ClientID == clientID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) CountOrderedPlants(_ context.Context) (int64, error) {
	var n int64
	for _, o := range r.orders {
		for _, item := range o.Items {
			n += int64(item.Quantity)
		}
	}
	return n, nil
}

func newTestOrderService(seed ...*domain.Order) (*OrderService, *stubOrderRepo) {
	repo := newStubOrderRepo(seed...)
	return NewOrderService(repo, nil, zerolog.Nop()), repo
}

func TestOrderService_List_ClientSeesOnlyOwnOrders(t *testing.T) {
	svc, _ := newTestOrderService(
		&domain.Order{ID: 1, ClientID: 7, Status: domain.StatusPending},
		&domain.Order{ID: 2, ClientID: 8, Status: domain.StatusPending},
		&domain.Order{ID: 3, ClientID: 7, Status: domain.StatusShipped},
	)

	orders, err := svc.List(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.ClientID != 7 {
			t.Fatalf("client saw foreign order %d", o.ID)
		}
	}
}

func TestOrderService_List_OperatorsSeeAll(t *testing.T) {
	svc, _ := newTestOrderService(
		&domain.Order{ID: 1, ClientID: 7},
		&domain.Order{ID: 2, ClientID: 8},
	)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleEmployee} {
		orders, err := svc.List(context.Background(), domain.Principal{ID: 1, Role: role})
		if err != nil {
			t.Fatalf("List for %s returned error: %v", role, err)
		}
		if len(orders) != 2 {
			t.Fatalf("%s expected 2 orders, got %d", role, len(orders))
		}
	}
}

func TestOrderService_Get_DistinguishesForbiddenFromNotFound(t *testing.T) {
	svc, _ := newTestOrderService(&domain.Order{ID: 42, ClientID: 7, Status: domain.StatusPending})

	if _, err := svc.Get(context.Background(), domain.Principal{ID: 8, Role: domain.RoleClient}, 42); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign order, got %v", err)
	}
	if _, err := svc.Get(context.Background(), domain.Principal{ID: 8, Role: domain.RoleClient}, 99); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}
	if _, err := svc.Get(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient}, 42); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestOrderService_Create_OwnerIsActor(t *testing.T) {
	svc, repo := newTestOrderService()

	order, err := svc.Create(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient}, ports.CreateOrderInput{
		Items: []domain.OrderItem{{PlantID: 3, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.ClientID != 7 {
		t.Fatalf("owner = %d, want 7", order.ClientID)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("status = %s, want pending", order.Status)
	}
	if stored, _ := repo.FindByID(context.Background(), order.ID); stored == nil {
		t.Fatalf("order not persisted")
	}
}

func TestOrderService_UpdateStatus_ClientCancelOwnPending(t *testing.T) {
	svc, _ := newTestOrderService(&domain.Order{ID: 42, ClientID: 7, Status: domain.StatusPending})

	order, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient}, 42, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if order.Status != domain.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", order.Status)
	}
}

func TestOrderService_UpdateStatus_DeniedLeavesOrderUntouched(t *testing.T) {
	svc, repo := newTestOrderService(&domain.Order{ID: 42, ClientID: 7, Status: domain.StatusCancelled})

	if _, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient}, 42, domain.StatusCancelled); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for re-cancel, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), 42)
	if stored.Status != domain.StatusCancelled {
		t.Fatalf("denied mutation reached the store: %s", stored.Status)
	}
}

func TestOrderService_UpdateStatus_AdminAnyTransition(t *testing.T) {
	svc, _ := newTestOrderService(&domain.Order{ID: 42, ClientID: 7, Status: domain.StatusCancelled})

	order, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 1, Role: domain.RoleAdmin}, 42, domain.StatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if order.Status != domain.StatusShipped {
		t.Fatalf("status = %s, want shipped", order.Status)
	}
}

func TestOrderService_UpdateStatus_MissingOrder(t *testing.T) {
	svc, _ := newTestOrderService()

	if _, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 1, Role: domain.RoleAdmin}, 99, domain.StatusShipped); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
