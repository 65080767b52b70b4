package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("listing_id asc").Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *OrderItemGormRepository) Find(ctx context.Context, orderID int64, listingID int64) (model.OrderItem, error) {
	var it model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND listing_id = ?", orderID, listingID).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderItem{}, err
	}
	return it, nil
}

func (r *OrderItemGormRepository) Upsert(ctx context.Context, item model.OrderItem) error {
	//複合キー衝突時は数量と単価を上書き
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "listing_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit_price", "updated_at"}),
	}).Create(&item).Error
}

func (r *OrderItemGormRepository) Update(ctx context.Context, item model.OrderItem) error {
	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("order_id = ? AND listing_id = ?", item.OrderID, item.ListingID).
		Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderItemGormRepository) Delete(ctx context.Context, orderID int64, listingID int64) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND listing_id = ?", orderID, listingID).
		Delete(&model.OrderItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderItemGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	//明細ゼロ件の注文もあるので0行でもエラーにしない
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error
}

func (r *OrderItemGormRepository) ListOrderIDsByListingIDs(ctx context.Context, listingIDs []int64) ([]int64, error) {
	if len(listingIDs) == 0 {
		return []int64{}, nil
	}
	var orderIDs []int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("listing_id IN ?", listingIDs).
		Distinct("order_id").
		Pluck("order_id", &orderIDs).Error
	if err != nil {
		return []int64{}, err
	}
	return orderIDs, nil
}

func (r *OrderItemGormRepository) DeleteByListingIDs(ctx context.Context, listingIDs []int64) error {
	if len(listingIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("listing_id IN ?", listingIDs).Delete(&model.OrderItem{}).Error
}
