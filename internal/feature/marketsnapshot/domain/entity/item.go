// Package entity defines the domain models for the marketsnapshot feature.
package entity

// Item は名前解決済みの取引アイテムです。IDが同一性を表します。
type Item struct {
	ID     int64   // ESI type_id
	Name   string  // 表示名 (e.g., "Tritanium")
	Volume float64 // 1単位あたりの体積 (m3)
}

// ItemMetadata はメタデータ取得APIが返すアイテム情報です。
type ItemMetadata struct {
	Name           string
	Volume         float64
	PackagedVolume float64
}
