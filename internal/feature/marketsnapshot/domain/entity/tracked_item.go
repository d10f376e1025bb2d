package entity

import "time"

// TrackedItem is an item whose snapshot is recorded on every recording run.
type TrackedItem struct {
	ID        uint      `gorm:"primaryKey"`
	TypeID    int64     `gorm:"not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
