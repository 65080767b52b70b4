package model

import "time"

type CardVariant string

const (
	CardVariantStandard    CardVariant = "Standard"
	CardVariantReverseHolo CardVariant = "ReverseHolo"
	CardVariantFullArt     CardVariant = "FullArt"
	CardVariantAltArt      CardVariant = "AltArt"
	CardVariantPromo       CardVariant = "Promo"
)

// variantが定義済みの値かどうか
func (v CardVariant) Valid() bool {
	switch v {
	case CardVariantStandard, CardVariantReverseHolo, CardVariantFullArt, CardVariantAltArt, CardVariantPromo:
		return true
	}
	return false
}

// カードのカタログ情報
type Card struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"card_id"`

	//収録セット名（Base Setなど）
	SetName string `gorm:"type:varchar(255);not null" json:"set_name"`

	//セット内番号（4/102など）
	CardNumber string `gorm:"type:varchar(50);not null" json:"card_number"`

	Name    string      `gorm:"type:varchar(255);not null" json:"name"`
	Variant CardVariant `gorm:"type:varchar(20);not null" json:"variant"`

	//発行年（不明ならnull）
	Year *int `gorm:"" json:"year"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
