package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

func TestMemoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := newTestProduct("Hammer", "14.50", true, models.CategoryTools)
	first.ID = 999
	second := newTestProduct("Sweater", "39.99", true, models.CategoryCloths)

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	product := newTestProduct("Hammer", "14.50", true, models.CategoryTools)
	require.NoError(t, repo.Create(product))

	product.Available = false
	assert.NoError(t, repo.Update(product))

	found, err := repo.Find(product.ID)
	require.NoError(t, err)
	assert.False(t, found.Available)

	assert.NoError(t, repo.Delete(product))
	_, err = repo.Find(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(product), repositories.ErrNotFound)
}

func TestMemoryUpdateEmptyID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	err := repo.Update(newTestProduct("Hammer", "14.50", true, models.CategoryTools))
	assert.Error(t, err)
	assert.IsType(t, &models.DataValidationError{}, err)
}

func TestMemoryFilters(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	require.NoError(t, repo.Create(newTestProduct("Bread", "3.49", true, models.CategoryFood)))
	require.NoError(t, repo.Create(newTestProduct("Bread", "4.25", false, models.CategoryFood)))
	require.NoError(t, repo.Create(newTestProduct("Wrench", "9.99", true, models.CategoryTools)))

	byName, err := repo.FindByName("Bread")
	assert.NoError(t, err)
	assert.Len(t, byName, 2)

	byCategory, err := repo.FindByCategory(models.CategoryFood)
	assert.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byAvailability, err := repo.FindByAvailability(true)
	assert.NoError(t, err)
	assert.Len(t, byAvailability, 2)

	byPrice, err := repo.FindByPrice(decimal.RequireFromString("9.99"))
	assert.NoError(t, err)
	assert.Len(t, byPrice, 1)
	assert.Equal(t, "Wrench", byPrice[0].Name)

	byPriceString, err := repo.FindByPriceString(` "9.99" `)
	assert.NoError(t, err)
	assert.Equal(t, byPrice, byPriceString)
}
