package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Allocation struct {
		warehouseID string
		qty         int
		guard       guard.ConstructorGuard
	}

	errAllocationNotConstructed := errors.New("Allocation must be created via NewAllocation")

	newAllocation := func(warehouseID string, qty int) (Allocation, error) {
		if warehouseID == "" {
			return Allocation{}, errors.New("warehouse id is required")
		}
		if qty <= 0 {
			return Allocation{}, errors.New("qty must be positive")
		}
		return Allocation{
			warehouseID: warehouseID,
			qty:         qty,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateAllocation := func(a Allocation) error {
		return a.guard.Validate(errAllocationNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		allocation, err := newAllocation("warehouse-1", 3)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateAllocation(allocation))
		assert.Equal(t, "warehouse-1", allocation.warehouseID)
		assert.Equal(t, 3, allocation.qty)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		// Given
		var allocation Allocation // zero value

		// When
		err := validateAllocation(allocation)

		// Then
		require.Error(t, err)
		assert.Equal(t, errAllocationNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newAllocation("", 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "warehouse id is required")

		_, err = newAllocation("warehouse-1", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "qty must be positive")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies that ConstructorGuard can be safely
// copied and passed by value.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g // Pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
