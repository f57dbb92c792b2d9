package models

type Warehouse struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Location string `json:"location" gorm:"not null"`
}
