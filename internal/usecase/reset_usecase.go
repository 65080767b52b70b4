package usecase

import (
	"context"
	"net/http"
	"time"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// /api/reset の業務ロジック。全テーブルをデモ用の初期データに戻す。
type ResetUsecase struct {
	reset repo.ResetRepository
}

func NewResetUsecase(reset repo.ResetRepository) *ResetUsecase {
	return &ResetUsecase{reset: reset}
}

func (u *ResetUsecase) Reset(ctx context.Context) error {
	if err := u.reset.ResetAll(ctx, seedData()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "reset failed")
	}
	return nil
}

func intPtr(v int) *int { return &v }

func cond(c model.CardCondition) *model.CardCondition { return &c }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// デモ用の初期データ一式。注文の合計は明細と整合した値で入れる。
func seedData() repo.SeedData {
	orderDate1 := time.Date(2025, 10, 30, 10, 15, 0, 0, time.UTC)
	orderDate2 := time.Date(2025, 10, 30, 11, 2, 0, 0, time.UTC)

	return repo.SeedData{
		Customers: []model.Customer{
			{ID: 1, Email: "benardo@example.com", Name: "Bernardo Mendes", Phone: "541-555-0101", ShippingAddress: "33 Pallet Town, Kanto"},
			{ID: 2, Email: "misty@example.com", Name: "Misty", Phone: "541-555-0102", ShippingAddress: "44 Cerulean Gym, Kanto"},
			{ID: 3, Email: "brock.s@example.com", Name: "Brock Harrison", Phone: "541-555-0103", ShippingAddress: "77 Pewter City, Kanto"},
		},
		Cards: []model.Card{
			{ID: 1, SetName: "Base Set", CardNumber: "4/102", Name: "Charizard", Variant: model.CardVariantStandard, Year: intPtr(1999)},
			{ID: 2, SetName: "Neo Genesis", CardNumber: "60/64", Name: "Pikachu", Variant: model.CardVariantStandard, Year: intPtr(1999)},
			{ID: 3, SetName: "Evolving Skies", CardNumber: "215/203", Name: "Rayquaza VMAX", Variant: model.CardVariantFullArt, Year: intPtr(2021)},
			{ID: 4, SetName: "Promo", CardNumber: "SWSH150", Name: "Umbreon", Variant: model.CardVariantPromo, Year: intPtr(2022)},
		},
		GradingCompanies: []model.GradingCompany{
			{ID: 1, Name: "PSA", GradeScale: model.GradeScale10, URL: "https://www.psacard.com"},
			{ID: 2, Name: "BGS", GradeScale: model.GradeScale10, URL: "https://www.beckett.com/grading"},
			{ID: 3, Name: "CGC", GradeScale: model.GradeScale100, URL: "https://www.cgccards.com"},
		},
		Listings: []model.Listing{
			{ID: 1, CardID: 1, Price: price("149.99"), Type: model.ListingTypeRaw, CardCondition: cond(model.CardConditionNearMint), QuantityAvailable: 2, Status: model.ListingStatusActive},
			{ID: 2, CardID: 2, Price: price("12.50"), Type: model.ListingTypeRaw, CardCondition: cond(model.CardConditionLightPlay), QuantityAvailable: 5, Status: model.ListingStatusActive},
			{ID: 3, CardID: 1, Price: price("289.00"), Type: model.ListingTypeGraded, QuantityAvailable: 1, Status: model.ListingStatusActive},
			{ID: 4, CardID: 3, Price: price("340.00"), Type: model.ListingTypeGraded, QuantityAvailable: 1, Status: model.ListingStatusActive},
			{ID: 5, CardID: 4, Price: price("24.99"), Type: model.ListingTypeRaw, CardCondition: cond(model.CardConditionNearMint), QuantityAvailable: 3, Status: model.ListingStatusHidden},
		},
		GradeSlabs: []model.GradeSlab{
			{SlabID: 3, CompanyID: 1, Grade: price("9.0")},
			{SlabID: 4, CompanyID: 2, Grade: price("9.5")},
		},
		Orders: []model.Order{
			{ID: 1001, CustomerID: 1, OrderDate: orderDate1, Status: model.OrderStatusPaid, Subtotal: price("438.99"), Tax: price("0.00"), Total: price("438.99")},
			{ID: 1002, CustomerID: 2, OrderDate: orderDate2, Status: model.OrderStatusPending, Subtotal: price("12.50"), Tax: price("0.00"), Total: price("12.50")},
		},
		OrderItems: []model.OrderItem{
			{OrderID: 1001, ListingID: 1, Quantity: 1, UnitPrice: price("149.99")},
			{OrderID: 1001, ListingID: 3, Quantity: 1, UnitPrice: price("289.00")},
			{OrderID: 1002, ListingID: 2, Quantity: 1, UnitPrice: price("12.50")},
		},
	}
}
