package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

// デモ用の初期データ一式
type SeedData struct {
	Customers        []model.Customer
	Cards            []model.Card
	Listings         []model.Listing
	GradingCompanies []model.GradingCompany
	GradeSlabs       []model.GradeSlab
	Orders           []model.Order
	OrderItems       []model.OrderItem
}

// 全テーブルを空にして初期データを入れ直す（1トランザクション）。
type ResetRepository interface {
	ResetAll(ctx context.Context, seed SeedData) error
}
