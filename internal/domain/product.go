package domain

import "time"

// Discount is a time-bounded price override on a product. An explicit
// positive DiscountPrice wins over DiscountPercentage.
type Discount struct {
	ID                 string
	ProductID          string
	StoreID            string
	DiscountPercentage float64
	DiscountPrice      float64
	StartDate          time.Time
	EndDate            time.Time
}

// ProductSnapshot is the catalog state read at order-creation time. The
// catalog service owns these rows; this service only reads them, apart from
// the stock decrement applied when a line is captured.
type ProductSnapshot struct {
	ID       string
	StoreID  string
	Name     string
	Price    float64
	Quantity int
	Discount *Discount
}

// Buyer is the slice of the user profile this service needs: the delivery
// address snapshotted onto every line at placement time.
type Buyer struct {
	ID      string
	Address string
}
