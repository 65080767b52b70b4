package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

// スラブはlisting主キー共有の1:1なのでlistingID基準で引く。
type GradeSlabRepository interface {
	List(ctx context.Context) ([]model.GradeSlab, error)
	FindByListingID(ctx context.Context, listingID int64) (model.GradeSlab, error)

	//存在すれば更新、無ければ作成
	Upsert(ctx context.Context, slab model.GradeSlab) error

	DeleteByListingID(ctx context.Context, listingID int64) error
	DeleteByListingIDs(ctx context.Context, listingIDs []int64) error
}
