package repository

import (
	"context"
	"errors"

	"pokebase/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 顧客の永続化（保存・取得）だけを約束。
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)

	Create(ctx context.Context, c model.Customer) (int64, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}
