package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem_StoresCostAsCents(t *testing.T) {
	env := newTestEnv(t)

	item, err := env.catalog.CreateItem(context.Background(), &CreateItemInput{
		Name:     "Butter",
		Cost:     4.99,
		Quantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(499), item.Cost)
	assert.Equal(t, 12, item.Quantity)
}

func TestCreateItem_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.catalog.CreateItem(ctx, &CreateItemInput{Cost: 1.00})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = env.catalog.CreateItem(ctx, &CreateItemInput{Name: "Butter", Cost: -1.00})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestResolve_AllKnownIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := env.createItem(t, "Apples", 1.20, 30)
	b := env.createItem(t, "Bananas", 0.80, 40)

	resolved, err := env.catalog.Resolve(ctx, []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Apples", resolved[a.ID].Name)
	assert.Equal(t, int64(120), resolved[a.ID].Cost)
}

func TestResolve_UnknownIDFails(t *testing.T) {
	env := newTestEnv(t)
	a := env.createItem(t, "Apples", 1.20, 30)

	_, err := env.catalog.Resolve(context.Background(), []uuid.UUID{a.ID, uuid.New()})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.GetItem(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListItems_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createItem(t, "Green Tea", 3.00, 5)
	env.createItem(t, "Black Tea", 3.50, 5)
	env.createItem(t, "Coffee", 6.00, 5)

	all, err := env.catalog.ListItems(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teas, err := env.catalog.ListItems(ctx, "Tea")
	require.NoError(t, err)
	assert.Len(t, teas, 2)
}
