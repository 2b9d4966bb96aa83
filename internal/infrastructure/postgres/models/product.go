package models

import "time"

// ProductModel mirrors the catalog service's products table. Only Quantity
// is ever written here, and only by the conditional decrement in the payment
// repository.
type ProductModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"type:uuid;index"`
	Name      string
	BrandName string
	Price     float64
	Quantity  int `gorm:"check:quantity >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
