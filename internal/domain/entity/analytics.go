package entity

// AdminStats is the platform-wide analytics snapshot shown on the admin
// dashboard.
type AdminStats struct {
	TotalUsers         int                      `json:"total_users"`
	TotalImages        int                      `json:"total_images"`
	DiseasedCount      int                      `json:"diseased_count"`
	ModelAccuracy      float64                  `json:"model_accuracy"`
	ScanTrend          []float64                `json:"scan_trend,omitempty"`
	PopularFertilizers []map[string]interface{} `json:"popular_fertilizers,omitempty"`
}

// ShopAnalytics is the shop owner's sales summary.
type ShopAnalytics struct {
	TotalRevenue  float64   `json:"total_revenue"`
	TotalOrders   int       `json:"total_orders"`
	MonthlyTrend  []float64 `json:"monthly_trend,omitempty"`
	PendingOrders int       `json:"pending_orders"`
}
