package models

// Review links a user's rating of a product. Rating range is enforced at the
// request boundary, not in the schema.
type Review struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Rating    int     `json:"rating" gorm:"not null"`
	Comment   *string `json:"comment"`
	UserID    uint    `json:"user_id" gorm:"index"`
	ProductID uint    `json:"product_id" gorm:"index"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
