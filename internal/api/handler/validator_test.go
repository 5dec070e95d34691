package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createPlantRequest{Name: "Monstera", Slug: "monstera", Price: 10})
	if err == nil {
		t.Fatalf("expected validation error for missing category_id")
	}
	if !strings.Contains(err.Error(), "category_id") {
		t.Fatalf("message %q should name the json field category_id", err.Error())
	}
	if strings.Contains(err.Error(), "CategoryID") {
		t.Fatalf("message %q leaked the Go field name", err.Error())
	}
}

func TestValidator_MessagesPerRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			"missing field",
			&loginRequest{Password: "pass"},
			"email is missing",
		},
		{
			"bad email",
			&loginRequest{Email: "nope", Password: "pass"},
			"email is not a valid email address",
		},
		{
			"short password",
			&signupRequest{Name: "Ada", Email: "ada@plants.local", Password: "short", Role: "client"},
			"password must be at least 8 characters",
		},
		{
			"role outside set",
			&signupRequest{Name: "Ada", Email: "ada@plants.local", Password: "greenhouse", Role: "admin"},
			"role must be one of employee, client",
		},
		{
			"empty order lines",
			&createOrderRequest{Items: []orderItemRequest{}},
			"items needs at least 1 entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("message %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	req := &signupRequest{Name: "Ada", Email: "ada@plants.local", Password: "greenhouse", Role: "client"}
	if err := v.Validate(req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
