package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	customerID, restaurantID, menuItemID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand(customerID, restaurantID, menuItemID, 2)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, customerID, cmd.CustomerID())
		assert.Equal(t, restaurantID, cmd.RestaurantID())
		assert.Equal(t, menuItemID, cmd.MenuItemID())
		assert.Equal(t, 2, cmd.Quantity())
	})

	t.Run("quantity below one", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			_, err := commands.NewAddCartItemCommand(customerID, restaurantID, menuItemID, quantity)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("zero ids", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.UUID{}, restaurantID, kernel.UUID{}, 1)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AddCartItemCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}

func TestNewUpdateCartItemQuantityCommand(t *testing.T) {
	customerID, itemID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewUpdateCartItemQuantityCommand(customerID, itemID, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, cmd.Delta())
	assert.Equal(t, itemID, cmd.ItemID())

	_, err = commands.NewUpdateCartItemQuantityCommand(customerID, itemID, 0)
	require.ErrorIs(t, err, commands.ErrDeltaIsZero)

	remove, err := commands.NewRemoveCartItemCommand(customerID, itemID)
	require.NoError(t, err)
	assert.Equal(t, cart.RemoveDelta, remove.Delta())

	var zero commands.UpdateCartItemQuantityCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func TestNewClearCartCommand(t *testing.T) {
	_, err := commands.NewClearCartCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.ClearCartCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrClearCartCommandIsNotConstructed)
}

func TestNewPlaceOrderCommand(t *testing.T) {
	orderID, customerID := kernel.NewUUID(), kernel.NewUUID()

	t.Run("address is trimmed", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, commands.PlaceOrderDetails{
			TotalAmount:     kernel.MustMoney(140),
			DeliveryAddress: "  12 Lake Rd \n",
			PaymentMethod:   "Razorpay",
			Payment:         order.PaymentReference{GatewayOrderID: "order_1"},
		})

		require.NoError(t, err)
		assert.Equal(t, "12 Lake Rd", cmd.Details().DeliveryAddress)
		assert.Equal(t, "order_1", cmd.Details().Payment.GatewayOrderID)
		assert.Equal(t, orderID, cmd.OrderID())
	})

	t.Run("blank address", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID, customerID, commands.PlaceOrderDetails{DeliveryAddress: "   "})
		require.ErrorIs(t, err, order.ErrDeliveryAddressRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestNewAssignAgentCommand(t *testing.T) {
	_, err := commands.NewAssignAgentCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	orderID, agentID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, agentID, cmd.AgentID())
}

func TestNewDeliverOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("without agent", func(t *testing.T) {
		cmd, err := commands.NewDeliverOrderCommand(orderID, nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.AgentID())
	})

	t.Run("agent id is copied", func(t *testing.T) {
		agentID := kernel.NewUUID()
		cmd, err := commands.NewDeliverOrderCommand(orderID, &agentID)
		require.NoError(t, err)

		agentID = kernel.NewUUID()
		require.NotNil(t, cmd.AgentID())
		assert.NotEqual(t, agentID, *cmd.AgentID())
	})

	t.Run("zero agent id", func(t *testing.T) {
		_, err := commands.NewDeliverOrderCommand(orderID, &kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestParameterlessCommands(t *testing.T) {
	reset := commands.NewResetDailyEarningsCommand()
	require.NoError(t, reset.Validate())

	var zeroReset commands.ResetDailyEarningsCommand
	require.ErrorIs(t, zeroReset.Validate(), commands.ErrResetDailyEarningsCommandIsNotConstructed)

	purge := commands.NewPurgeEmptyCartsCommand()
	require.NoError(t, purge.Validate())

	var zeroPurge commands.PurgeEmptyCartsCommand
	require.ErrorIs(t, zeroPurge.Validate(), commands.ErrPurgeEmptyCartsCommandIsNotConstructed)
}
