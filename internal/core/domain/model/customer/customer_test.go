package customer_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, " Asha ", "asha@example.com", "555-0100", "12 Park Lane")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Asha", c.Name())
		assert.Equal(t, "12 Park Lane", c.Address())
		assert.NoError(t, c.Validate())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "", "  ", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, customer.ErrNameIsRequired)
		require.ErrorIs(t, err, customer.ErrEmailIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	var missing *customer.Customer

	assert.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)
	assert.ErrorIs(t, missing.Validate(), customer.ErrCustomerIsNotConstructed)
	assert.NoError(t, customer.RestoreCustomer(kernel.NewUUID(), "n", "e", "", "").Validate())
}
