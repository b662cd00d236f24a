package entities

type Recipe struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"user_id"`
	Recipe string `gorm:"type:text" json:"recipe"`
	// JSON array of ingredient names
	Ingredients string `gorm:"type:text" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type Fertilizer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	Fertilizer  string `gorm:"type:text" json:"fertilizer"`
	Ingredients string `gorm:"type:text" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
