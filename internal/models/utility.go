package models

// Utility rows are created lazily by the first download event for a name;
// after that only the counter moves.
type Utility struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	Downloads int64  `json:"downloads" gorm:"default:0"`
}
