// Package dto defines data transfer objects for the ESI API responses.
package dto

// IDsResponse は POST /universe/ids/ のレスポンスです。完全一致した名前のみが含まれます。
type IDsResponse struct {
	InventoryTypes []NamedID `json:"inventory_types"`
}

// NamedID is an id/name pair returned by the name resolution endpoint.
type NamedID struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TypeResponse は GET /universe/types/{type_id}/ のレスポンスです。
type TypeResponse struct {
	TypeID         int64   `json:"type_id"`
	Name           string  `json:"name"`
	Volume         float64 `json:"volume"`
	PackagedVolume float64 `json:"packaged_volume"`
	Published      bool    `json:"published"`
}

// MarketOrder は GET /markets/{region_id}/orders/ の要素です。
type MarketOrder struct {
	OrderID      int64   `json:"order_id"`
	TypeID       int64   `json:"type_id"`
	LocationID   int64   `json:"location_id"`
	SystemID     int64   `json:"system_id"`
	Price        float64 `json:"price"`
	VolumeRemain int64   `json:"volume_remain"`
	VolumeTotal  int64   `json:"volume_total"`
	IsBuyOrder   bool    `json:"is_buy_order"`
	Issued       string  `json:"issued"`
	Duration     int     `json:"duration"`
	MinVolume    int64   `json:"min_volume"`
	Range        string  `json:"range"`
}

// HistoryEntry は GET /markets/{region_id}/history/ の要素です。
type HistoryEntry struct {
	Date       string  `json:"date"`
	Average    float64 `json:"average"`
	Highest    float64 `json:"highest"`
	Lowest     float64 `json:"lowest"`
	OrderCount int64   `json:"order_count"`
	Volume     int64   `json:"volume"`
}

// ErrorResponse is the body ESI returns with 4xx/5xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
