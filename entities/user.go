package entities

import "time"

type User struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	Username             string `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email                string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Password             string `json:"-"`
	Role                 string `gorm:"type:varchar(32);default:user" json:"role"`
	NotificationsEnabled bool   `json:"notifications_enabled"`

	Timestamp
}

type LoginLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LoginTime time.Time `gorm:"type:timestamp with time zone" json:"login_time"`
	IPAddress string    `gorm:"type:varchar(64)" json:"ip_address"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
