package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem_NewLine(t *testing.T) {
	cart := NewCart()

	err := cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", "")

	assert.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].InventoryID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(10), cart.Items[0].ShopOwnerID)
}

func TestCart_AddItem_ExistingLineIncrementsQuantity(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))

	err := cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", "")

	assert.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddItem_InvalidInventoryID(t *testing.T) {
	cart := NewCart()

	err := cart.AddItem(0, "Urea 50kg", 100.0, 10, "Green Agro", "")

	assert.Error(t, err)
	assert.Empty(t, cart.Items)
}

func TestCart_RemoveAt_KeepsOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))
	require.NoError(t, cart.AddItem(3, "Neem Oil", 30.0, 10, "Green Agro", ""))

	cart.RemoveAt(1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(1), cart.Items[0].InventoryID)
	assert.Equal(t, int64(3), cart.Items[1].InventoryID)
}

func TestCart_RemoveAt_OutOfRangeIsNoOp(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))

	cart.RemoveAt(-1)
	cart.RemoveAt(1)
	cart.RemoveAt(100)

	assert.Len(t, cart.Items, 1)
}

func TestCart_Total(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total())

	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))

	assert.Equal(t, 250.0, cart.Total())
}

func TestCart_SellerGroups_PartitionsByShopOwner(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))
	require.NoError(t, cart.AddItem(3, "Neem Oil", 30.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(3, "Neem Oil", 30.0, 10, "Green Agro", ""))

	groups := cart.SellerGroups()

	require.Len(t, groups, 2)

	assert.Equal(t, int64(10), groups[0].ShopOwnerID)
	assert.Equal(t, "Green Agro", groups[0].ShopOwnerName)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, OrderItemRequest{InventoryID: 1, Quantity: 1}, groups[0].Items[0])
	assert.Equal(t, OrderItemRequest{InventoryID: 3, Quantity: 2}, groups[0].Items[1])

	assert.Equal(t, int64(11), groups[1].ShopOwnerID)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, OrderItemRequest{InventoryID: 2, Quantity: 1}, groups[1].Items[0])
}

func TestCart_SellerGroups_Empty(t *testing.T) {
	cart := NewCart()

	assert.Empty(t, cart.SellerGroups())
}
