package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	for i := 1; i <= 5; i++ {
		c, err := svc.Clients.Create(ctx, core.Client{ID: 999, Name: fmt.Sprintf("Client %d", i)})
		require.NoError(t, err)
		assert.Equal(t, int64(i), c.ID)
	}
}

func TestDeleteThenCreateUsesFreshID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Vendors.Create(ctx, core.Vendor{Name: "v"})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Vendors.Delete(ctx, 2))

	v, err := svc.Vendors.Create(ctx, core.Vendor{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.ID)

	require.NoError(t, svc.Vendors.Delete(ctx, 4))
	require.NoError(t, svc.Vendors.Delete(ctx, 3))
	v, err = svc.Vendors.Create(ctx, core.Vendor{Name: "after"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ID, "max remaining is 1")
}

func TestCatalogUpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Clients.Create(ctx, core.Client{Name: "ABC Corp", Email: "billing@abc.com", PaymentTerms: "Net 30"})
	require.NoError(t, err)

	got, err := svc.Clients.Update(ctx, 1, core.Client{ID: 42, Name: "ABC Corporation"})
	require.NoError(t, err)
	assert.Equal(t, core.Client{ID: 1, Name: "ABC Corporation"}, got)

	stored, err := svc.Clients.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, stored.Email)
}

func TestCatalogValidation(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestServices(t)

	_, err := svc.Categories.Create(ctx, core.Category{Name: "X", Type: "transfer"})
	assert.True(t, errors.Is(err, core.ErrValidation))
	_, err = svc.Accounts.Create(ctx, core.Account{Name: "", Type: core.Savings})
	assert.True(t, errors.Is(err, core.ErrValidation))
	assert.Empty(t, pub.ops())
}

func TestDeleteMissingIsNotFoundForEveryKind(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	assert.True(t, isNotFound(svc.Categories.Delete(ctx, 99999), core.KindCategory))
	assert.True(t, isNotFound(svc.Accounts.Delete(ctx, 99999), core.KindAccount))
	assert.True(t, isNotFound(svc.Clients.Delete(ctx, 99999), core.KindClient))
	assert.True(t, isNotFound(svc.Vendors.Delete(ctx, 99999), core.KindVendor))
	assert.True(t, isNotFound(svc.Transactions.Delete(ctx, 99999), core.KindTransaction))
	assert.True(t, isNotFound(svc.Budgets.Delete(ctx, 99999), core.KindBudget))

	_, err := svc.Categories.Update(ctx, 99999, core.Category{Name: "x", Type: core.Income})
	assert.True(t, isNotFound(err, core.KindCategory))
}

func TestMutationsPublishEvents(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestServices(t)

	c, err := svc.Categories.Create(ctx, core.Category{Name: "Food", Type: core.Expense})
	require.NoError(t, err)
	_, err = svc.Categories.Update(ctx, c.ID, core.Category{Name: "Groceries", Type: core.Expense})
	require.NoError(t, err)
	require.NoError(t, svc.Categories.Delete(ctx, c.ID))

	assert.Equal(t, []events.Op{events.OpCreated, events.OpUpdated, events.OpDeleted}, pub.ops())
	assert.Equal(t, core.KindCategory, pub.events[0].Kind)
	assert.Equal(t, c.ID, pub.events[0].Key)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestServices(t)
	pub.err = errors.New("broker down")

	c, err := svc.Categories.Create(ctx, core.Category{Name: "Salary", Type: core.Income})
	require.NoError(t, err)

	stored, err := svc.Categories.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salary", stored.Name)
}
