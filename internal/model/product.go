package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CategoryAll is the listing filter value that disables category filtering.
const CategoryAll = "all"

// Product represents a garment in the storefront catalogue.
type Product struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Price       float64    `json:"price" db:"price"`
	Category    string     `json:"category" db:"category"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	Description string     `json:"description" db:"description"`
	Sizes       []string   `json:"sizes,omitempty" db:"sizes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// ProductRequest is the payload for creating or fully replacing a product.
// Pointer fields distinguish "absent" from zero values.
type ProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Sizes       []string `json:"sizes,omitempty"`
}

// Validate checks that every required field is present and well formed.
// When requireImage is false the image URL may be absent because it is
// filled in after an upload.
func (r *ProductRequest) Validate(requireImage bool) error {
	if r == nil {
		return NewValidationError("product request is required")
	}

	var missing []string
	if isBlank(r.Name) {
		missing = append(missing, "name")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if isBlank(r.Category) {
		missing = append(missing, "category")
	}
	if requireImage && isBlank(r.ImageURL) {
		missing = append(missing, "image_url")
	}
	if isBlank(r.Description) {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	if !isFinite(*r.Price) {
		return NewValidationError("price must be a finite number")
	}
	if *r.Price < 0 {
		return NewValidationError("price must not be negative")
	}

	for i, size := range r.Sizes {
		if strings.TrimSpace(size) == "" {
			return NewValidationError(fmt.Sprintf("sizes[%d] must not be empty", i))
		}
	}

	return nil
}

// ToProduct copies the validated request fields into a product record.
func (r *ProductRequest) ToProduct() Product {
	p := Product{
		Name:        strings.TrimSpace(deref(r.Name)),
		Category:    strings.TrimSpace(deref(r.Category)),
		ImageURL:    strings.TrimSpace(deref(r.ImageURL)),
		Description: deref(r.Description),
		Sizes:       r.Sizes,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

// ParseSizes splits a comma separated size list such as "S, M, L".
func ParseSizes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	sizes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sizes = append(sizes, p)
		}
	}
	return sizes
}

// isFinite rejects NaN and infinities, which JSON cannot encode.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
