package entity

// InventoryItem is a purchasable product variant as listed on the
// marketplace or in a shop owner's own inventory.
type InventoryItem struct {
	InventoryID    int64   `json:"inventory_id"`
	FertilizerID   int64   `json:"fertilizer_id"`
	FertilizerName string  `json:"fertilizer_name"`
	Price          float64 `json:"price"`
	StockQuantity  int     `json:"stock_quantity"`
	ShopOwnerID    int64   `json:"shop_owner_id"`
	ShopOwnerName  string  `json:"shop_owner_name"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// ProductCreate is the shop owner's add-product payload.
type ProductCreate struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	ImageURL      string  `json:"image_url,omitempty"`
}
