package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GradeSlabGormRepository struct {
	db *gorm.DB
}

func NewGradeSlabGormRepository(db *gorm.DB) *GradeSlabGormRepository {
	return &GradeSlabGormRepository{db: db}
}

func (r *GradeSlabGormRepository) List(ctx context.Context) ([]model.GradeSlab, error) {
	var items []model.GradeSlab
	if err := r.db.WithContext(ctx).Order("slab_id asc").Find(&items).Error; err != nil {
		return []model.GradeSlab{}, err
	}
	return items, nil
}

func (r *GradeSlabGormRepository) FindByListingID(ctx context.Context, listingID int64) (model.GradeSlab, error) {
	var s model.GradeSlab
	err := r.db.WithContext(ctx).Where("slab_id = ?", listingID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.GradeSlab{}, repo.ErrNotFound
	}
	if err != nil {
		return model.GradeSlab{}, err
	}
	return s, nil
}

func (r *GradeSlabGormRepository) Upsert(ctx context.Context, slab model.GradeSlab) error {
	//slab_id衝突時はcompany_idとgradeを上書き
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slab_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_id", "grade", "updated_at"}),
	}).Create(&slab).Error
}

func (r *GradeSlabGormRepository) DeleteByListingID(ctx context.Context, listingID int64) error {
	res := r.db.WithContext(ctx).Where("slab_id = ?", listingID).Delete(&model.GradeSlab{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *GradeSlabGormRepository) DeleteByListingIDs(ctx context.Context, listingIDs []int64) error {
	if len(listingIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("slab_id IN ?", listingIDs).Delete(&model.GradeSlab{}).Error
}
