package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusShipped  OrderStatus = "shipped"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusRefunded OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCanceled, OrderStatusRefunded:
		return true
	}
	return false
}

// 注文ヘッダ。Subtotal/Tax/Totalは明細から再計算される導出値で、
// 明細の変更が確定するたびにtotal == subtotal + taxになる。
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"order_id"`
	CustomerID int64       `gorm:"not null;index" json:"customer_id"`
	OrderDate  time.Time   `gorm:"not null" json:"order_date"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	Subtotal decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"tax"`
	Total    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
