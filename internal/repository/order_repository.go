package repository

import (
	"context"

	"pokebase/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	Create(ctx context.Context, order model.Order) (int64, error)

	//ヘッダ項目（customer_id / order_date / status）のみ更新。
	//導出値のsubtotal/tax/totalには触らない。
	UpdateHeader(ctx context.Context, order model.Order) error

	//subtotal/tax/totalの3列だけの部分更新。
	//対象注文が無い（0行更新）ならErrNotFoundを返す。
	UpdateTotals(ctx context.Context, orderID int64, subtotal, tax, total decimal.Decimal) error

	Delete(ctx context.Context, orderID int64) error

	//顧客一覧のtotal_orders用
	CountByCustomerID(ctx context.Context, customerID int64) (int64, error)
}
