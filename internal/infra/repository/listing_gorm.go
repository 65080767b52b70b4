package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
)

type ListingGormRepository struct {
	db *gorm.DB
}

func NewListingGormRepository(db *gorm.DB) *ListingGormRepository {
	return &ListingGormRepository{db: db}
}

func (r *ListingGormRepository) List(ctx context.Context) ([]model.Listing, error) {
	var items []model.Listing
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Listing{}, err
	}
	return items, nil
}

func (r *ListingGormRepository) FindByID(ctx context.Context, id int64) (model.Listing, error) {
	var l model.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Listing{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

func (r *ListingGormRepository) ListByCardID(ctx context.Context, cardID int64) ([]model.Listing, error) {
	var items []model.Listing
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Order("id asc").Find(&items).Error; err != nil {
		return []model.Listing{}, err
	}
	return items, nil
}

func (r *ListingGormRepository) Create(ctx context.Context, l model.Listing) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&l).Error; err != nil {
		return 0, err
	}
	return l.ID, nil
}

func (r *ListingGormRepository) Update(ctx context.Context, l model.Listing) error {
	res := r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"card_id":            l.CardID,
			"price":              l.Price,
			"type":               l.Type,
			"card_condition":     l.CardCondition,
			"quantity_available": l.QuantityAvailable,
			"status":             l.Status,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ListingGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ListingGormRepository) DeleteByCardID(ctx context.Context, cardID int64) error {
	//0件でもエラーにしない（出品が無いカードもある）
	return r.db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&model.Listing{}).Error
}
