package models

import "time"

type DiscountModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	ProductID          string `gorm:"type:uuid;not null;index"`
	StoreID            string `gorm:"type:uuid;not null;index"`
	DiscountPercentage float64
	DiscountPrice      float64
	StartDate          time.Time `gorm:"not null;index:idx_discount_window"`
	EndDate            time.Time `gorm:"not null;index:idx_discount_window"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
