package models

type Review struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"userId" gorm:"index;not null"`
	UtilityID uint   `json:"utilityId" gorm:"index;not null"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`

	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Utility Utility `json:"-" gorm:"foreignKey:UtilityID"`
}
