package entity

// Order is one active market order at the time it was fetched.
type Order struct {
	Price           float64 // ISK per unit
	RemainingVolume int64   // 残り数量
	IsBuy           bool
	LocationID      int64 // 注文が出されているステーション/ストラクチャー
}

// LocationScope は注文を特定のロケーションに絞り込むかどうかを表します。
// ゼロ値はリージョン全体（絞り込みなし）です。
type LocationScope struct {
	ID  int64
	Set bool
}

// AllLocations はリージョン内の全注文を対象とするスコープを返します。
func AllLocations() LocationScope {
	return LocationScope{}
}

// AtLocation は指定ロケーションの注文のみを対象とするスコープを返します。
func AtLocation(id int64) LocationScope {
	return LocationScope{ID: id, Set: true}
}

// Includes reports whether an order placed at locationID is inside the scope.
func (s LocationScope) Includes(locationID int64) bool {
	return !s.Set || s.ID == locationID
}
