package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCompleted OrderStatus = "Completed"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

const (
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "Card"
)

type OrderItemRequest struct {
	InventoryID int64 `json:"inventory_id"`
	Quantity    int   `json:"quantity"`
}

// OrderRequest is the order-creation payload. The backend assigns the order
// ID and the payment status.
type OrderRequest struct {
	ShopOwnerID   int64              `json:"shop_owner_id"`
	Items         []OrderItemRequest `json:"items"`
	PaymentMethod string             `json:"payment_method"`
}

type OrderItem struct {
	ItemID          int64   `json:"item_id"`
	InventoryID     int64   `json:"inventory_id"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type Order struct {
	OrderID       int64       `json:"order_id"`
	BuyerID       int64       `json:"buyer_id"`
	ShopOwnerID   int64       `json:"shop_owner_id"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Settled reports whether the backend marked the order paid at creation time
// (the instant-settlement path); no payment step is presented for it.
func (o *Order) Settled() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// PaymentInfo is what the payment step shows for a single pending order.
type PaymentInfo struct {
	Amount        float64 `json:"amount"`
	ShopOwnerName string  `json:"shop_owner_name"`
	UPIString     string  `json:"upi_string"`
}
