package repository

import (
	"context"

	repo "pokebase/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	customers        repo.CustomerRepository
	cards            repo.CardRepository
	listings         repo.ListingRepository
	gradingCompanies repo.GradingCompanyRepository
	gradeSlabs       repo.GradeSlabRepository
	orders           repo.OrderRepository
	orderItems       repo.OrderItemRepository
}

func (r *txReposGorm) Customers() repo.CustomerRepository              { return r.customers }
func (r *txReposGorm) Cards() repo.CardRepository                      { return r.cards }
func (r *txReposGorm) Listings() repo.ListingRepository                { return r.listings }
func (r *txReposGorm) GradingCompanies() repo.GradingCompanyRepository { return r.gradingCompanies }
func (r *txReposGorm) GradeSlabs() repo.GradeSlabRepository            { return r.gradeSlabs }
func (r *txReposGorm) Orders() repo.OrderRepository                    { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository            { return r.orderItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			customers:        NewCustomerGormRepository(tx),
			cards:            NewCardGormRepository(tx),
			listings:         NewListingGormRepository(tx),
			gradingCompanies: NewGradingCompanyGormRepository(tx),
			gradeSlabs:       NewGradeSlabGormRepository(tx),
			orders:           NewOrderGormRepository(tx),
			orderItems:       NewOrderItemGormRepository(tx),
		}
		return fn(r)
	})
}
