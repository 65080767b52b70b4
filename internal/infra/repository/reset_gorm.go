package repository

import (
	"context"
	"fmt"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"gorm.io/gorm"
)

type ResetGormRepository struct {
	db *gorm.DB
}

func NewResetGormRepository(db *gorm.DB) *ResetGormRepository {
	return &ResetGormRepository{db: db}
}

func (r *ResetGormRepository) ResetAll(ctx context.Context, seed repo.SeedData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//参照される側が後になるよう子から順に消す
		deletions := []interface{}{
			&model.OrderItem{},
			&model.Order{},
			&model.GradeSlab{},
			&model.Listing{},
			&model.Card{},
			&model.GradingCompany{},
			&model.Customer{},
		}
		for _, m := range deletions {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		if len(seed.Customers) > 0 {
			if err := tx.Create(&seed.Customers).Error; err != nil {
				return err
			}
		}
		if len(seed.Cards) > 0 {
			if err := tx.Create(&seed.Cards).Error; err != nil {
				return err
			}
		}
		if len(seed.GradingCompanies) > 0 {
			if err := tx.Create(&seed.GradingCompanies).Error; err != nil {
				return err
			}
		}
		if len(seed.Listings) > 0 {
			if err := tx.Create(&seed.Listings).Error; err != nil {
				return err
			}
		}
		if len(seed.GradeSlabs) > 0 {
			if err := tx.Create(&seed.GradeSlabs).Error; err != nil {
				return err
			}
		}
		if len(seed.Orders) > 0 {
			if err := tx.Create(&seed.Orders).Error; err != nil {
				return err
			}
		}
		if len(seed.OrderItems) > 0 {
			if err := tx.Create(&seed.OrderItems).Error; err != nil {
				return err
			}
		}

		//明示IDで入れたのでシーケンスを追いつかせる（PostgreSQLは明示ID挿入でnextvalが進まない）
		for _, table := range []string{"customers", "cards", "grading_companies", "listings", "orders"} {
			q := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))",
				table, table,
			)
			if err := tx.Exec(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
