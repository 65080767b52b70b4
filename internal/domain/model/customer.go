package model

import "time"

// 顧客
type Customer struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`

	//電話番号
	Phone string `gorm:"type:varchar(30)" json:"phone"`

	//配送先住所
	ShippingAddress string `gorm:"type:varchar(255)" json:"shipping_address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
