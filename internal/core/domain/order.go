package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnknownStatus = errors.New("unknown order status")

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// OrderItem is a single plant line on an order.
type OrderItem struct {
	PlantID  int64 `json:"plant_id" bson:"plant_id"`
	Quantity int   `json:"quantity" bson:"quantity"`
}

// Order is the aggregate the authorization policy protects. ClientID is the
// owner set at creation and never reassigned.
type Order struct {
	ID        int64       `json:"id" bson:"_id"`
	ClientID  int64       `json:"client_id" bson:"client_id"`
	Status    OrderStatus `json:"status" bson:"status"`
	Items     []OrderItem `json:"items" bson:"items"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Decision is the outcome of an order authorization check. It is returned by
// value so callers must handle all three cases explicitly; a bare bool would
// make a forgotten check silently permissive.
type Decision int

const (
	DecisionNotFound Decision = iota
	DecisionDenied
	DecisionAllowed
)

func (d Decision) String() string {
	switch d {
	case DecisionNotFound:
		return "not_found"
	case DecisionDenied:
		return "denied"
	case DecisionAllowed:
		return "allowed"
	}
	return "unknown"
}

// AuthorizeStatusChange decides whether actor may move order to target.
//
// Admin and employee are trusted operators and may set any status. A client
// may only cancel their own order, and only while it is still pending;
// resubmitting the current status is not special-cased and falls through the
// same rule.
func AuthorizeStatusChange(actor Principal, order *Order, target OrderStatus) Decision {
	if order == nil {
		return DecisionNotFound
	}

	switch actor.Role {
	case RoleAdmin, RoleEmployee:
		return DecisionAllowed
	case RoleClient:
		if order.ClientID == actor.ID && target == StatusCancelled && order.Status == StatusPending {
			return DecisionAllowed
		}
		return DecisionDenied
	}
	return DecisionDenied
}

// AuthorizeView decides whether actor may read order. Clients see only
// orders they own; admin and employee see all.
func AuthorizeView(actor Principal, order *Order) Decision {
	if order == nil {
		return DecisionNotFound
	}

	switch actor.Role {
	case RoleAdmin, RoleEmployee:
		return DecisionAllowed
	case RoleClient:
		if order.ClientID == actor.ID {
			return DecisionAllowed
		}
		return DecisionDenied
	}
	return DecisionDenied
}
