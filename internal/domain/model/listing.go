package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingType string

const (
	ListingTypeRaw    ListingType = "raw"
	ListingTypeGraded ListingType = "graded"
)

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSoldOut ListingStatus = "sold_out"
	ListingStatusHidden  ListingStatus = "hidden"
)

// 未鑑定カードの状態ランク
type CardCondition string

const (
	CardConditionMint      CardCondition = "M"
	CardConditionNearMint  CardCondition = "NM"
	CardConditionLightPlay CardCondition = "LP"
	CardConditionModPlay   CardCondition = "MP"
	CardConditionHeavyPlay CardCondition = "HP"
	CardConditionDamaged   CardCondition = "D"
)

func (c CardCondition) Valid() bool {
	switch c {
	case CardConditionMint, CardConditionNearMint, CardConditionLightPlay,
		CardConditionModPlay, CardConditionHeavyPlay, CardConditionDamaged:
		return true
	}
	return false
}

// 出品。rawは状態ランクあり、gradedはスラブ（GradeSlab）が1:1で付く。
type Listing struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"listing_id"`
	CardID int64 `gorm:"not null;index" json:"card_id"`

	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Type  ListingType     `gorm:"type:varchar(10);not null" json:"type"`

	//gradedの場合はnull
	CardCondition *CardCondition `gorm:"type:varchar(5)" json:"card_condition"`

	QuantityAvailable int64         `gorm:"not null" json:"quantity_available"`
	Status            ListingStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
