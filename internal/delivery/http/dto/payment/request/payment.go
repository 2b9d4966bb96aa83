package request

type CartLine struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type PlaceRequest struct {
	Products []CartLine `json:"products" binding:"required"`
}

type RetryRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
}

type ConfirmReceiptRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
}
