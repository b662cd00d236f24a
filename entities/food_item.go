package entities

type FoodItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	// ISO-8601 date or date-time, kept as sent by the client.
	ExpiryDate string `gorm:"type:varchar(40)" json:"expiry_date"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamp
}
