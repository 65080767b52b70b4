package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 鑑定スラブ。graded出品と主キー共有の1:1（SlabID == ListingID）。
type GradeSlab struct {
	SlabID    int64 `gorm:"primaryKey;autoIncrement:false" json:"slab_id"`
	CompanyID int64 `gorm:"not null;index" json:"company_id"`

	//評点（9.5など）
	Grade decimal.Decimal `gorm:"type:numeric(3,1);not null" json:"grade"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
