package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/metrics"
	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	PlantID  int64 `json:"plant_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderResponse struct {
	ID        int64              `json:"id"`
	ClientID  int64              `json:"client_id"`
	Status    string             `json:"status"`
	Items     []domain.OrderItem `json:"items"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Status:    string(o.Status),
		Items:     o.Items,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// List handles GET /orders, scoped by the caller's role.
//
// @Summary      List orders visible to the caller
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": resp})
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order by ID
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  orderResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": toOrderResponse(order)})
}

// Create handles POST /orders. Client-only route; the owner is the caller.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order lines"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{PlantID: item.PlantID, Quantity: item.Quantity})
	}

	order, err := h.service.Create(c.Request().Context(), p, ports.CreateOrderInput{Items: items})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{"data": toOrderResponse(order)})
}

// Update handles PUT /orders/:id, the status transition gated by the
// order authorization policy.
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Order ID"
// @Param        body  body      updateOrderRequest  true  "Target status"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), p, id, target)
	switch {
	case err == nil:
		metrics.OrderDecisionsTotal.WithLabelValues(string(p.Role), domain.DecisionAllowed.String()).Inc()
	case errors.Is(err, domain.ErrForbidden):
		metrics.OrderDecisionsTotal.WithLabelValues(string(p.Role), domain.DecisionDenied.String()).Inc()
	case errors.Is(err, domain.ErrOrderNotFound):
		metrics.OrderDecisionsTotal.WithLabelValues(string(p.Role), domain.DecisionNotFound.String()).Inc()
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"data": toOrderResponse(order)})
}
