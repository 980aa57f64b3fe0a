package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAllocation(
	t *testing.T,
	warehouseID kernel.UUID,
	warehouseName string,
	warehouseType order.WarehouseType,
	qty int,
	status order.NotificationStatus,
) *order.Allocation {
	t.Helper()
	a, err := order.NewAllocation(kernel.NewUUID(), warehouseID, warehouseName, warehouseType, qty, status)
	require.NoError(t, err)
	return a
}

func mustMalformedAllocation(t *testing.T, warehouseType order.WarehouseType, qty int) *order.Allocation {
	t.Helper()
	var missingWarehouseID kernel.UUID
	a, err := order.RestoreAllocation(kernel.NewUUID(), missingWarehouseID, "", warehouseType, qty, order.Allocated)
	require.NoError(t, err)
	return a
}

func TestNewLineItem(t *testing.T) {
	validID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	price := decimal.NewFromFloat(19.99)

	t.Run("should create valid line item without allocations", func(t *testing.T) {
		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, nil)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.ID().IsEqual(validID))
		assert.Equal(t, "Desk Lamp", li.Name())
		assert.Equal(t, 3, li.Qty())
		assert.True(t, li.UnitPrice().Equal(price))
		assert.Empty(t, li.Allocations())
	})

	t.Run("should create line item with main and remaining allocations", func(t *testing.T) {
		main := mustAllocation(t, warehouseID, "North Hub", order.MainWarehouse, 2, order.Allocated)
		remaining := mustAllocation(t, kernel.NewUUID(), "South Hub", order.RemainingWarehouse, 1, order.Requested)

		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{main, remaining})

		require.NoError(t, err)
		assert.Len(t, li.Allocations(), 2)
		assert.Same(t, main, li.Allocations()[0])
		assert.Same(t, remaining, li.Allocations()[1])
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		li, err := order.NewLineItem(validID, "", 3, price, nil)

		require.Error(t, err)
		assert.Nil(t, li)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with non-positive qty", func(t *testing.T) {
		li, err := order.NewLineItem(validID, "Desk Lamp", 0, price, nil)

		require.Error(t, err)
		assert.Nil(t, li)
		assert.Contains(t, err.Error(), "qty is invalid")
	})

	t.Run("should fail with remaining allocation without main", func(t *testing.T) {
		remaining := mustAllocation(t, warehouseID, "South Hub", order.RemainingWarehouse, 1, order.Requested)

		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{remaining})

		require.Error(t, err)
		assert.Nil(t, li)
		assert.ErrorIs(t, err, order.ErrRemainingWithoutMain)
	})

	t.Run("should fail with duplicate warehouse and type pair", func(t *testing.T) {
		first := mustAllocation(t, warehouseID, "North Hub", order.MainWarehouse, 2, order.Allocated)
		duplicate, err := order.NewAllocation(kernel.NewUUID(), warehouseID, "North Hub", order.MainWarehouse, 1, order.Allocated)
		require.NoError(t, err)

		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{first, duplicate})

		require.Error(t, err)
		assert.Nil(t, li)
		assert.Contains(t, err.Error(), "duplicate allocation")
	})

	t.Run("should allow same warehouse with different types", func(t *testing.T) {
		main := mustAllocation(t, warehouseID, "North Hub", order.MainWarehouse, 2, order.Allocated)
		remaining, err := order.NewAllocation(kernel.NewUUID(), warehouseID, "North Hub", order.RemainingWarehouse, 1, order.Requested)
		require.NoError(t, err)

		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{main, remaining})

		require.NoError(t, err)
		assert.Len(t, li.Allocations(), 2)
	})

	t.Run("should skip malformed allocations in uniqueness check", func(t *testing.T) {
		main := mustAllocation(t, warehouseID, "North Hub", order.MainWarehouse, 2, order.Allocated)
		malformed1 := mustMalformedAllocation(t, order.MainWarehouse, 1)
		malformed2 := mustMalformedAllocation(t, order.MainWarehouse, 1)

		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{main, malformed1, malformed2})

		require.NoError(t, err)
		assert.Len(t, li.Allocations(), 3)
	})

	t.Run("should fail with unconstructed allocation", func(t *testing.T) {
		li, err := order.NewLineItem(validID, "Desk Lamp", 3, price, []*order.Allocation{{}})

		require.Error(t, err)
		assert.Nil(t, li)
		assert.ErrorIs(t, err, order.ErrAllocationIsNotConstructed)
	})
}

func TestLineItem_Finders(t *testing.T) {
	mainWarehouseID := kernel.NewUUID()
	remainingWarehouseID := kernel.NewUUID()
	price := decimal.NewFromInt(100)

	main := mustAllocation(t, mainWarehouseID, "North Hub", order.MainWarehouse, 2, order.Allocated)
	remaining := mustAllocation(t, remainingWarehouseID, "South Hub", order.RemainingWarehouse, 1, order.Requested)

	li, err := order.NewLineItem(kernel.NewUUID(), "Desk Lamp", 3, price, []*order.Allocation{main, remaining})
	require.NoError(t, err)

	t.Run("MainAllocationFor", func(t *testing.T) {
		assert.Same(t, main, li.MainAllocationFor(mainWarehouseID))
		assert.Nil(t, li.MainAllocationFor(remainingWarehouseID))
	})

	t.Run("RemainingAllocationFor", func(t *testing.T) {
		assert.Same(t, remaining, li.RemainingAllocationFor(remainingWarehouseID))
		assert.Nil(t, li.RemainingAllocationFor(mainWarehouseID))
	})

	t.Run("MainAllocation", func(t *testing.T) {
		assert.Same(t, main, li.MainAllocation())
	})

	t.Run("RemainingCounterparts", func(t *testing.T) {
		counterparts := li.RemainingCounterparts(mainWarehouseID)
		require.Len(t, counterparts, 1)
		assert.Same(t, remaining, counterparts[0])

		assert.Empty(t, li.RemainingCounterparts(remainingWarehouseID))
	})

	t.Run("FindAllocation", func(t *testing.T) {
		assert.Same(t, remaining, li.FindAllocation(remaining.ID()))
		assert.Nil(t, li.FindAllocation(kernel.NewUUID()))
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail validation for nil line item", func(t *testing.T) {
		var li *order.LineItem

		err := li.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}
