package repository

import (
	"context"

	"pokebase/internal/domain/model"
)

type CardRepository interface {
	List(ctx context.Context) ([]model.Card, error)
	FindByID(ctx context.Context, id int64) (model.Card, error)

	Create(ctx context.Context, c model.Card) (int64, error)
	Update(ctx context.Context, c model.Card) error
	Delete(ctx context.Context, id int64) error
}
