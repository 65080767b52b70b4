package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。(OrderID, ListingID)の複合キーで、同じ出品は1注文に1行まで。
// UnitPriceは明細作成・更新時点のスナップショット（出品価格に追随しない）。
type OrderItem struct {
	OrderID   int64 `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ListingID int64 `gorm:"primaryKey;autoIncrement:false" json:"listing_id"`

	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
