package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
)

type GradingCompanyGormRepository struct {
	db *gorm.DB
}

func NewGradingCompanyGormRepository(db *gorm.DB) *GradingCompanyGormRepository {
	return &GradingCompanyGormRepository{db: db}
}

func (r *GradingCompanyGormRepository) List(ctx context.Context) ([]model.GradingCompany, error) {
	var items []model.GradingCompany
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.GradingCompany{}, err
	}
	return items, nil
}

func (r *GradingCompanyGormRepository) FindByID(ctx context.Context, id int64) (model.GradingCompany, error) {
	var gc model.GradingCompany
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&gc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.GradingCompany{}, repo.ErrNotFound
	}
	if err != nil {
		return model.GradingCompany{}, err
	}
	return gc, nil
}

func (r *GradingCompanyGormRepository) Create(ctx context.Context, gc model.GradingCompany) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&gc).Error; err != nil {
		return 0, err
	}
	return gc.ID, nil
}

func (r *GradingCompanyGormRepository) Update(ctx context.Context, gc model.GradingCompany) error {
	res := r.db.WithContext(ctx).Model(&model.GradingCompany{}).
		Where("id = ?", gc.ID).
		Updates(map[string]interface{}{
			"name":        gc.Name,
			"grade_scale": gc.GradeScale,
			"url":         gc.URL,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *GradingCompanyGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GradingCompany{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
