package models

// Product represents an item that can be reviewed
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"category_id" gorm:"not null;index"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
	Reviews  []Review `json:"-" gorm:"foreignKey:ProductID"`
}
