package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcitt/fulcitt-api/pkg/apperror"
)

func TestUpsertProductCreatesAndUpdates(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	created, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name:     "Espresso",
		Category: "Drinks",
		Price:    1.20,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(120), created.Price)

	// Same name updates in place instead of creating a second product
	updated, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name:     "Espresso",
		Category: "Hot drinks",
		Price:    1.50,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Hot drinks", updated.Category)
	assert.Equal(t, int64(150), updated.Price)

	products, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestUpsertProductRoundsFractionalCents(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name:     "Gift box",
		Category: "Misc",
		Price:    19.99,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1999), created.Price)
}

func TestUpsertProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{Price: 1.00})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))

	_, err = svc.UpsertProduct(context.Background(), &UpsertProductInput{Name: "Espresso", Price: -1.00})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
}

func TestUpsertProductRevivesSoftDeleted(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	created, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name: "Espresso", Category: "Drinks", Price: 1.20,
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))

	revived, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name: "Espresso", Category: "Drinks", Price: 1.20,
	})
	require.NoError(t, err)
	assert.False(t, revived.IsDeleted)
}

func TestDeleteProductKeepsRow(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	created, err := svc.UpsertProduct(context.Background(), &UpsertProductInput{
		Name: "Espresso", Category: "Drinks", Price: 1.20,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))

	visible, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.ListProducts(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1, "soft-deleted products stay resolvable")
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	err := svc.DeleteProduct(context.Background(), uuid.New())

	assert.True(t, apperror.IsKind(err, apperror.KindProductNotFound))
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.GetProduct(context.Background(), uuid.New())

	assert.Nil(t, product)
	assert.True(t, apperror.IsKind(err, apperror.KindProductNotFound))
}
