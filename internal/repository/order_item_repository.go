package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Find(ctx context.Context, orderID int64, listingID int64) (model.OrderItem, error)

	//(orderID, listingID)が既にあれば数量と単価を上書き、無ければ作成
	Upsert(ctx context.Context, item model.OrderItem) error
	Update(ctx context.Context, item model.OrderItem) error
	Delete(ctx context.Context, orderID int64, listingID int64) error

	//注文削除のカスケード用
	DeleteByOrderID(ctx context.Context, orderID int64) error

	//出品削除のカスケード用。削除前に影響注文を知るためのListOrderIDsとセットで使う。
	ListOrderIDsByListingIDs(ctx context.Context, listingIDs []int64) ([]int64, error)
	DeleteByListingIDs(ctx context.Context, listingIDs []int64) error
}
