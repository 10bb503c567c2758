package models

// Category groups products
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`

	// Relations
	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}
