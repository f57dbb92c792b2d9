package models

import "time"

type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Status    string      `json:"status" gorm:"not null;default:'Pending'"`
	Items     []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
)

// Valid reports whether s is one of the known order lifecycle states.
func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderCompleted
}

// TotalPrice is the sum of item totals. Items must be loaded with their
// products for the result to be meaningful.
func (o Order) TotalPrice() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].TotalPrice()
	}
	return total
}
