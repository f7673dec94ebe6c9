package model

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatusPending is the status of every newly submitted order.
const OrderStatusPending = "pending"

// Order represents a customer order.
type Order struct {
	ID              string      `json:"id" db:"id"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	CustomerEmail   string      `json:"customer_email" db:"customer_email"`
	CustomerAddress string      `json:"customer_address" db:"customer_address"`
	Items           []OrderItem `json:"items" db:"items"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount"`
	Status          string      `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// OrderItem represents a line item in an order. Products are referenced by
// value only; nothing checks that the product still exists.
type OrderItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name,omitempty"`
	Size      string   `json:"size,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Quantity  int      `json:"quantity"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	CustomerName    *string     `json:"customer_name"`
	CustomerEmail   *string     `json:"customer_email"`
	CustomerAddress *string     `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	TotalAmount     *float64    `json:"total_amount"`
}

// Validate checks the order request shape.
func (r *OrderRequest) Validate() error {
	if r == nil {
		return NewValidationError("order request is required")
	}

	var missing []string
	if isBlank(r.CustomerName) {
		missing = append(missing, "customer_name")
	}
	if isBlank(r.CustomerEmail) {
		missing = append(missing, "customer_email")
	}
	if isBlank(r.CustomerAddress) {
		missing = append(missing, "customer_address")
	}
	if len(r.Items) == 0 {
		missing = append(missing, "items")
	}
	if r.TotalAmount == nil {
		missing = append(missing, "total_amount")
	}
	if len(missing) > 0 {
		return NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	if !strings.Contains(*r.CustomerEmail, "@") {
		return NewValidationError("customer_email must be a valid email address")
	}

	if !isFinite(*r.TotalAmount) {
		return NewValidationError("total_amount must be a finite number")
	}
	if *r.TotalAmount < 0 {
		return NewValidationError("total_amount must not be negative")
	}

	for i, item := range r.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return NewValidationError(fmt.Sprintf("items[%d]: product_id is required", i))
		}
		if item.Quantity <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d]: quantity must be greater than zero", i))
		}
		if item.Price != nil && !isFinite(*item.Price) {
			return NewValidationError(fmt.Sprintf("items[%d]: price must be a finite number", i))
		}
		if item.Price != nil && *item.Price < 0 {
			return NewValidationError(fmt.Sprintf("items[%d]: price must not be negative", i))
		}
	}

	return nil
}

// ToOrder copies the validated request into a new order record.
func (r *OrderRequest) ToOrder() Order {
	o := Order{
		CustomerName:    strings.TrimSpace(deref(r.CustomerName)),
		CustomerEmail:   strings.TrimSpace(deref(r.CustomerEmail)),
		CustomerAddress: strings.TrimSpace(deref(r.CustomerAddress)),
		Items:           r.Items,
		Status:          OrderStatusPending,
	}
	if r.TotalAmount != nil {
		o.TotalAmount = *r.TotalAmount
	}
	return o
}
