package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
)

type CardGormRepository struct {
	db *gorm.DB
}

func NewCardGormRepository(db *gorm.DB) *CardGormRepository {
	return &CardGormRepository{db: db}
}

func (r *CardGormRepository) List(ctx context.Context) ([]model.Card, error) {
	var items []model.Card
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Card{}, err
	}
	return items, nil
}

func (r *CardGormRepository) FindByID(ctx context.Context, id int64) (model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Card{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Card{}, err
	}
	return c, nil
}

func (r *CardGormRepository) Create(ctx context.Context, c model.Card) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *CardGormRepository) Update(ctx context.Context, c model.Card) error {
	res := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"set_name":    c.SetName,
			"card_number": c.CardNumber,
			"name":        c.Name,
			"variant":     c.Variant,
			"year":        c.Year,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CardGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Card{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
