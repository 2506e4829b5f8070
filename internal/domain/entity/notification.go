package entity

import "time"

type Notification struct {
	NotificationID int64     `json:"notification_id"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ShopQuery is a farmer question addressed to a shop owner, optionally
// carrying the owner's reply.
type ShopQuery struct {
	QueryID    int64     `json:"query_id"`
	FarmerName string    `json:"farmer_name"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
