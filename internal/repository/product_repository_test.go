package repository

import (
	"context"
	"testing"
	"time"

	"fashionhub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, repo ProductRepository, products []model.Product) {
	t.Helper()

	for i := range products {
		_, err := repo.Create(context.Background(), &products[i])
		require.NoError(t, err)
	}
}

func TestProductRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	seedProducts(t, repo, []model.Product{
		{ID: "P001", Name: "Summer Dress", Price: 49.99, Category: "dresses", ImageURL: "http://img/1.png", Description: "Light", Sizes: []string{"S", "M"}, CreatedAt: now},
		{ID: "P002", Name: "Denim Jacket", Price: 89.50, Category: "jackets", ImageURL: "http://img/2.png", Description: "Blue", CreatedAt: now.Add(time.Second)},
		{ID: "P003", Name: "Evening Dress", Price: 120, Category: "dresses", ImageURL: "http://img/3.png", Description: "Long", CreatedAt: now.Add(2 * time.Second)},
	})

	t.Run("List all", func(t *testing.T) {
		products, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "P003", products[0].ID)
	})

	t.Run("List by category", func(t *testing.T) {
		products, err := repo.List(ctx, "dresses")
		require.NoError(t, err)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "dresses", p.Category)
		}
	})

	t.Run("List unknown category is empty not nil", func(t *testing.T) {
		products, err := repo.List(ctx, "hats")
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("GetByID round-trips every field", func(t *testing.T) {
		p, err := repo.GetByID(ctx, "P001")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Summer Dress", p.Name)
		assert.Equal(t, 49.99, p.Price)
		assert.Equal(t, "http://img/1.png", p.ImageURL)
		assert.Equal(t, []string{"S", "M"}, p.Sizes)
		assert.True(t, now.Equal(p.CreatedAt))
		assert.Nil(t, p.UpdatedAt)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		p, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Update existing", func(t *testing.T) {
		updatedAt := now.Add(time.Hour)
		p, err := repo.Update(ctx, &model.Product{
			ID: "P002", Name: "Denim Jacket v2", Price: 79, Category: "jackets",
			ImageURL: "http://img/2b.png", Description: "Washed", UpdatedAt: &updatedAt,
		})
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Denim Jacket v2", p.Name)
		require.NotNil(t, p.UpdatedAt)
		assert.True(t, updatedAt.Equal(*p.UpdatedAt))
	})

	t.Run("Update missing", func(t *testing.T) {
		updatedAt := now
		p, err := repo.Update(ctx, &model.Product{ID: "nope", Name: "x", Category: "x", ImageURL: "x", Description: "x", UpdatedAt: &updatedAt})
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "P003")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "P003")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Negative price rejected by store", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Product{ID: "BAD", Name: "x", Price: -1, Category: "x", ImageURL: "x", Description: "x", CreatedAt: now})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert product")
	})
}
