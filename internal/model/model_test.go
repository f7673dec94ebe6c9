package model

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validProductRequest() *ProductRequest {
	return &ProductRequest{
		Name:        strPtr("Dress"),
		Price:       floatPtr(49.99),
		Category:    strPtr("dresses"),
		ImageURL:    strPtr("http://x/y.png"),
		Description: strPtr("A dress"),
	}
}

func validOrderRequest() *OrderRequest {
	return &OrderRequest{
		CustomerName:    strPtr("Jane Doe"),
		CustomerEmail:   strPtr("jane@example.com"),
		CustomerAddress: strPtr("1 Main St"),
		Items:           []OrderItem{{ProductID: "p-1", Quantity: 2}},
		TotalAmount:     floatPtr(99.98),
	}
}

func TestProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(r *ProductRequest)
		requireImage bool
		errorMsg     string
	}{
		{name: "Valid request", mutate: func(r *ProductRequest) {}, requireImage: true},
		{
			name:         "Missing image allowed for uploads",
			mutate:       func(r *ProductRequest) { r.ImageURL = nil },
			requireImage: false,
		},
		{
			name:         "Missing image rejected for JSON",
			mutate:       func(r *ProductRequest) { r.ImageURL = nil },
			requireImage: true,
			errorMsg:     "missing required fields: image_url",
		},
		{
			name: "Several missing fields are listed together",
			mutate: func(r *ProductRequest) {
				r.Name = strPtr("  ")
				r.Price = nil
				r.Description = nil
			},
			requireImage: true,
			errorMsg:     "missing required fields: name, price, description",
		},
		{
			name:         "Zero price is allowed",
			mutate:       func(r *ProductRequest) { r.Price = floatPtr(0) },
			requireImage: true,
		},
		{
			name:         "Negative price",
			mutate:       func(r *ProductRequest) { r.Price = floatPtr(-1) },
			requireImage: true,
			errorMsg:     "price must not be negative",
		},
		{
			name:         "NaN price",
			mutate:       func(r *ProductRequest) { r.Price = floatPtr(math.NaN()) },
			requireImage: true,
			errorMsg:     "price must be a finite number",
		},
		{
			name:         "Infinite price",
			mutate:       func(r *ProductRequest) { r.Price = floatPtr(math.Inf(1)) },
			requireImage: true,
			errorMsg:     "price must be a finite number",
		},
		{
			name:         "Negative infinite price",
			mutate:       func(r *ProductRequest) { r.Price = floatPtr(math.Inf(-1)) },
			requireImage: true,
			errorMsg:     "price must be a finite number",
		},
		{
			name:         "Blank size",
			mutate:       func(r *ProductRequest) { r.Sizes = []string{"S", " "} },
			requireImage: true,
			errorMsg:     "sizes[1] must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProductRequest()
			tt.mutate(req)

			err := req.Validate(tt.requireImage)

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.errorMsg, err.Error())
		})
	}
}

func TestProductRequest_ToProduct(t *testing.T) {
	req := validProductRequest()
	req.Name = strPtr("  Dress ")
	req.Sizes = []string{"S", "M"}

	p := req.ToProduct()

	assert.Equal(t, "Dress", p.Name)
	assert.Equal(t, 49.99, p.Price)
	assert.Equal(t, "dresses", p.Category)
	assert.Equal(t, "http://x/y.png", p.ImageURL)
	assert.Equal(t, "A dress", p.Description)
	assert.Equal(t, []string{"S", "M"}, p.Sizes)
	assert.Empty(t, p.ID)
}

func TestParseSizes(t *testing.T) {
	assert.Nil(t, ParseSizes(""))
	assert.Nil(t, ParseSizes("   "))
	assert.Equal(t, []string{"S", "M", "XL"}, ParseSizes("S, M,,XL "))
}

func TestOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *OrderRequest)
		errorMsg string
	}{
		{name: "Valid request", mutate: func(r *OrderRequest) {}},
		{
			name:     "Missing customer email",
			mutate:   func(r *OrderRequest) { r.CustomerEmail = nil },
			errorMsg: "missing required fields: customer_email",
		},
		{
			name:     "Malformed customer email",
			mutate:   func(r *OrderRequest) { r.CustomerEmail = strPtr("jane.example.com") },
			errorMsg: "customer_email must be a valid email address",
		},
		{
			name: "Missing items and total",
			mutate: func(r *OrderRequest) {
				r.Items = nil
				r.TotalAmount = nil
			},
			errorMsg: "missing required fields: items, total_amount",
		},
		{
			name:     "Negative total",
			mutate:   func(r *OrderRequest) { r.TotalAmount = floatPtr(-5) },
			errorMsg: "total_amount must not be negative",
		},
		{
			name:     "NaN total",
			mutate:   func(r *OrderRequest) { r.TotalAmount = floatPtr(math.NaN()) },
			errorMsg: "total_amount must be a finite number",
		},
		{
			name:     "Infinite total",
			mutate:   func(r *OrderRequest) { r.TotalAmount = floatPtr(math.Inf(1)) },
			errorMsg: "total_amount must be a finite number",
		},
		{
			name: "Item with infinite price",
			mutate: func(r *OrderRequest) {
				r.Items = []OrderItem{{ProductID: "p", Quantity: 1, Price: floatPtr(math.Inf(1))}}
			},
			errorMsg: "items[0]: price must be a finite number",
		},
		{
			name:     "Item without product",
			mutate:   func(r *OrderRequest) { r.Items = []OrderItem{{Quantity: 1}} },
			errorMsg: "items[0]: product_id is required",
		},
		{
			name:     "Item with zero quantity",
			mutate:   func(r *OrderRequest) { r.Items = []OrderItem{{ProductID: "p", Quantity: 0}} },
			errorMsg: "items[0]: quantity must be greater than zero",
		},
		{
			name: "Item with negative price",
			mutate: func(r *OrderRequest) {
				r.Items = []OrderItem{{ProductID: "p", Quantity: 1, Price: floatPtr(-1)}}
			},
			errorMsg: "items[0]: price must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)

			err := req.Validate()

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, ErrCodeValidation, DomainCode(err))
			assert.Equal(t, tt.errorMsg, err.Error())
		})
	}
}

func TestOrderRequest_ToOrder(t *testing.T) {
	o := validOrderRequest().ToOrder()

	assert.Equal(t, "Jane Doe", o.CustomerName)
	assert.Equal(t, "jane@example.com", o.CustomerEmail)
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, 99.98, o.TotalAmount)
	assert.Len(t, o.Items, 1)
}

func TestLoginRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      LoginRequest
		identity string
		errorMsg string
	}{
		{name: "Email login", req: LoginRequest{Email: "admin@fashionhub.com", Password: "x"}, identity: "admin@fashionhub.com"},
		{name: "Username login", req: LoginRequest{Username: "admin", Password: "x"}, identity: "admin"},
		{name: "Email preferred", req: LoginRequest{Email: "a@b.c", Username: "admin", Password: "x"}, identity: "a@b.c"},
		{name: "No identity", req: LoginRequest{Password: "x"}, errorMsg: "email or username is required"},
		{name: "No password", req: LoginRequest{Email: "a@b.c"}, identity: "a@b.c", errorMsg: "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.identity, tt.req.Identity())
			err := tt.req.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.errorMsg)
			}
		})
	}
}

func TestDomainError(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete product: %w", ErrProductNotFound)

	assert.True(t, errors.Is(wrapped, ErrProductNotFound))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, ErrCodeProductNotFound, DomainCode(wrapped))
	assert.Equal(t, "", DomainCode(errors.New("boom")))
	assert.True(t, errors.Is(NewValidationError("x"), ErrValidation))
}
