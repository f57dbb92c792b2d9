package models

// OrderItem is one line of an order: a product and a quantity.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null;check:quantity >= 0"`
	Product   Product `json:"product" gorm:"constraint:OnDelete:CASCADE"`
}

func (i OrderItem) TotalPrice() float64 {
	return i.Product.Price * float64(i.Quantity)
}
