package models

// WarehouseProduct records how much of one product is stocked at one
// warehouse. Several rows for the same (warehouse, product) pair may exist.
type WarehouseProduct struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null"`
	ProductID   uint      `json:"product_id" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity >= 0"`
	Warehouse   Warehouse `json:"warehouse" gorm:"constraint:OnDelete:CASCADE"`
	Product     Product   `json:"product" gorm:"constraint:OnDelete:CASCADE"`
}
