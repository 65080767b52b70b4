package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

type GradingCompanyRepository interface {
	List(ctx context.Context) ([]model.GradingCompany, error)
	FindByID(ctx context.Context, id int64) (model.GradingCompany, error)

	Create(ctx context.Context, gc model.GradingCompany) (int64, error)
	Update(ctx context.Context, gc model.GradingCompany) error
	Delete(ctx context.Context, id int64) error
}
