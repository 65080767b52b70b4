package model

import "time"

// 鑑定会社の評点スケール（10点満点 or 100点満点）
type GradeScale string

const (
	GradeScale10  GradeScale = "10"
	GradeScale100 GradeScale = "100"
)

type GradingCompany struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"company_id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	GradeScale GradeScale `gorm:"type:varchar(5);not null" json:"grade_scale"`
	URL        string     `gorm:"type:varchar(255)" json:"url"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
