package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseType_Validate(t *testing.T) {
	t.Run("should pass for valid types", func(t *testing.T) {
		require.NoError(t, order.MainWarehouse.Validate())
		require.NoError(t, order.RemainingWarehouse.Validate())
	})

	t.Run("should fail for unknown type", func(t *testing.T) {
		err := order.UnknownWarehouseType.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "warehouse type is invalid")
	})

	t.Run("should fail for out of range type", func(t *testing.T) {
		err := order.WarehouseType(7).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "7 is not a valid warehouse type")
	})
}

func TestWarehouseType_String(t *testing.T) {
	assert.Equal(t, "MainWarehouse", order.MainWarehouse.String())
	assert.Equal(t, "RemainingWarehouse", order.RemainingWarehouse.String())
	assert.Equal(t, "Unknown", order.UnknownWarehouseType.String())
	assert.Equal(t, "Unknown", order.WarehouseType(7).String())
}
