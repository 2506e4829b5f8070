package entity

import (
	"errors"
	"time"
)

// CartItem is one purchasable line in the local cart. Name, price and image
// are a snapshot taken when the item was added; they are not re-validated
// against the catalog until an order is placed.
type CartItem struct {
	InventoryID   int64   `json:"inventory_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	ShopOwnerID   int64   `json:"shop_owner_id"`
	ShopOwnerName string  `json:"shop_owner_name"`
	ImageURL      string  `json:"image_url,omitempty"`
}

func NewCartItem(inventoryID int64, name string, price float64, shopOwnerID int64, shopOwnerName, imageURL string) (*CartItem, error) {
	if inventoryID <= 0 {
		return nil, errors.New("inventory ID must be positive for cart item")
	}
	if name == "" {
		return nil, errors.New("cart item name cannot be empty")
	}
	return &CartItem{
		InventoryID:   inventoryID,
		Name:          name,
		Price:         price,
		Quantity:      1,
		ShopOwnerID:   shopOwnerID,
		ShopOwnerName: shopOwnerName,
		ImageURL:      imageURL,
	}, nil
}

// Cart is an ordered sequence of line items with at most one item per
// inventory ID. Adding an ID that is already present increments its quantity
// instead of appending a duplicate line.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart() *Cart {
	return &Cart{
		Items:     make([]CartItem, 0),
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Cart) GetItem(inventoryID int64) (*CartItem, int) {
	for i, item := range c.Items {
		if item.InventoryID == inventoryID {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

func (c *Cart) AddItem(inventoryID int64, name string, price float64, shopOwnerID int64, shopOwnerName, imageURL string) error {
	item, _ := c.GetItem(inventoryID)
	if item != nil {
		item.Quantity++
	} else {
		newItem, err := NewCartItem(inventoryID, name, price, shopOwnerID, shopOwnerName, imageURL)
		if err != nil {
			return err
		}
		c.Items = append(c.Items, *newItem)
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveAt drops the line at the given position. An out-of-range index is a
// silent no-op.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	c.UpdatedAt = time.Now().UTC()
}

func (c *Cart) Clear() {
	c.Items = make([]CartItem, 0)
	c.UpdatedAt = time.Now().UTC()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// SellerGroup holds the slice of a cart fulfilled by a single shop owner.
// One order is placed per group at checkout.
type SellerGroup struct {
	ShopOwnerID   int64
	ShopOwnerName string
	Items         []OrderItemRequest
}

// SellerGroups partitions the cart by shop owner. Groups appear in the order
// their seller was first encountered in the cart, and items keep the cart's
// insertion order within each group.
func (c *Cart) SellerGroups() []SellerGroup {
	groups := make([]SellerGroup, 0)
	index := make(map[int64]int)

	for _, item := range c.Items {
		i, ok := index[item.ShopOwnerID]
		if !ok {
			i = len(groups)
			index[item.ShopOwnerID] = i
			groups = append(groups, SellerGroup{
				ShopOwnerID:   item.ShopOwnerID,
				ShopOwnerName: item.ShopOwnerName,
			})
		}
		groups[i].Items = append(groups[i].Items, OrderItemRequest{
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
		})
	}
	return groups
}
