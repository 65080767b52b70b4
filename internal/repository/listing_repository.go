package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

type ListingRepository interface {
	List(ctx context.Context) ([]model.Listing, error)
	FindByID(ctx context.Context, id int64) (model.Listing, error)

	//カスケード削除用（カード配下の出品）
	ListByCardID(ctx context.Context, cardID int64) ([]model.Listing, error)

	Create(ctx context.Context, l model.Listing) (int64, error)
	Update(ctx context.Context, l model.Listing) error
	Delete(ctx context.Context, id int64) error
	DeleteByCardID(ctx context.Context, cardID int64) error
}
