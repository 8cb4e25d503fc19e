package dto

// MetaResponse agregado del dashboard (GET /api/meta).
// Las listas "recent*" llevan a lo sumo 5 elementos, latestActions 10.
type MetaResponse struct {
	APIVersion        string `json:"apiVersion"`
	AlmostExpiredSpan int    `json:"almostExpiredSpan"`

	TotalItems int `json:"totalItems"`
	TotalStock int `json:"totalStock"` // entradas no consumidas

	ExpiredStock       []StockEntryResponse `json:"expiredStock"`
	AlmostExpiredStock []StockEntryResponse `json:"almostExpiredStock"`

	BelowStockItems  []ItemResponse  `json:"belowStockItems"`
	BelowStockGroups []GroupResponse `json:"belowStockGroups"`

	LatestActions []HistoryResponse `json:"latestActions"`

	RecentItemChanges     []ItemResponse     `json:"recentItemChanges"`
	RecentGroupChanges    []GroupResponse    `json:"recentGroupChanges"`
	RecentCategoryChanges []CategoryResponse `json:"recentCategoryChanges"`
	RecentLocationChanges []LocationResponse `json:"recentLocationChanges"`
}
