package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"
	"pokebase/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CardRepoMock struct{ mock.Mock }

func (m *CardRepoMock) List(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Card)
	return cs, args.Error(1)
}

func (m *CardRepoMock) FindByID(ctx context.Context, id int64) (model.Card, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Card)
	return c, args.Error(1)
}

func (m *CardRepoMock) Create(ctx context.Context, c model.Card) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CardRepoMock) Update(ctx context.Context, c model.Card) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CardRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type GradeSlabRepoMock struct{ mock.Mock }

func (m *GradeSlabRepoMock) List(ctx context.Context) ([]model.GradeSlab, error) {
	args := m.Called(ctx)
	ss, _ := args.Get(0).([]model.GradeSlab)
	return ss, args.Error(1)
}

func (m *GradeSlabRepoMock) FindByListingID(ctx context.Context, listingID int64) (model.GradeSlab, error) {
	args := m.Called(ctx, listingID)
	s, _ := args.Get(0).(model.GradeSlab)
	return s, args.Error(1)
}

func (m *GradeSlabRepoMock) Upsert(ctx context.Context, slab model.GradeSlab) error {
	args := m.Called(ctx, slab)
	return args.Error(0)
}

func (m *GradeSlabRepoMock) DeleteByListingID(ctx context.Context, listingID int64) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func (m *GradeSlabRepoMock) DeleteByListingIDs(ctx context.Context, listingIDs []int64) error {
	args := m.Called(ctx, listingIDs)
	return args.Error(0)
}

// =====================
// Txスタブ（beginやcommitはせず、同じモックをそのまま渡す）
// =====================

type txReposStub struct {
	customers  repo.CustomerRepository
	cards      repo.CardRepository
	listings   repo.ListingRepository
	companies  repo.GradingCompanyRepository
	slabs      repo.GradeSlabRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (s txReposStub) Customers() repo.CustomerRepository              { return s.customers }
func (s txReposStub) Cards() repo.CardRepository                      { return s.cards }
func (s txReposStub) Listings() repo.ListingRepository                { return s.listings }
func (s txReposStub) GradingCompanies() repo.GradingCompanyRepository { return s.companies }
func (s txReposStub) GradeSlabs() repo.GradeSlabRepository            { return s.slabs }
func (s txReposStub) Orders() repo.OrderRepository                    { return s.orders }
func (s txReposStub) OrderItems() repo.OrderItemRepository            { return s.orderItems }

type txManagerStub struct{ repos txReposStub }

func (s txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s.repos)
}

func TestCardUsecase_Create_InvalidVariant(t *testing.T) {
	cards := new(CardRepoMock)
	uc := usecase.NewCardUsecase(cards, txManagerStub{}, nil)

	_, err := uc.Create(context.Background(), usecase.CardInput{
		SetName:    "Base Set",
		CardNumber: "4/102",
		Name:       "Charizard",
		Variant:    "shiny",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCardUsecase_Delete_CascadesAndRecalculates(t *testing.T) {
	cards := new(CardRepoMock)
	listings := new(ListingRepoMock)
	slabs := new(GradeSlabRepoMock)
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)

	tx := txManagerStub{repos: txReposStub{
		cards:      cards,
		listings:   listings,
		slabs:      slabs,
		orders:     orders,
		orderItems: items,
	}}
	totals := usecase.NewOrderTotalsUsecase(orders, items, usecase.ZeroTax)
	uc := usecase.NewCardUsecase(cards, tx, totals)

	listings.On("ListByCardID", mock.Anything, int64(1)).Return([]model.Listing{
		{ID: 1, CardID: 1},
		{ID: 3, CardID: 1},
	}, nil)
	items.On("ListOrderIDsByListingIDs", mock.Anything, []int64{1, 3}).Return([]int64{1001}, nil)
	slabs.On("DeleteByListingIDs", mock.Anything, []int64{1, 3}).Return(nil)
	items.On("DeleteByListingIDs", mock.Anything, []int64{1, 3}).Return(nil)
	listings.On("DeleteByCardID", mock.Anything, int64(1)).Return(nil)
	cards.On("Delete", mock.Anything, int64(1)).Return(nil)

	//明細が消えた後の再計算
	items.On("ListByOrderID", mock.Anything, int64(1001)).Return([]model.OrderItem{}, nil)
	orders.On("UpdateTotals", mock.Anything, int64(1001), "0.00", "0.00", "0.00").Return(nil)

	err := uc.Delete(context.Background(), 1)
	assert.NoError(t, err)

	orders.AssertExpectations(t)
	slabs.AssertExpectations(t)
}

func TestCardUsecase_Delete_NotFoundSkipsRecalc(t *testing.T) {
	cards := new(CardRepoMock)
	listings := new(ListingRepoMock)
	slabs := new(GradeSlabRepoMock)
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)

	tx := txManagerStub{repos: txReposStub{
		cards:      cards,
		listings:   listings,
		slabs:      slabs,
		orders:     orders,
		orderItems: items,
	}}
	totals := usecase.NewOrderTotalsUsecase(orders, items, usecase.ZeroTax)
	uc := usecase.NewCardUsecase(cards, tx, totals)

	listings.On("ListByCardID", mock.Anything, int64(99)).Return([]model.Listing{}, nil)
	items.On("ListOrderIDsByListingIDs", mock.Anything, []int64{}).Return([]int64{}, nil)
	slabs.On("DeleteByListingIDs", mock.Anything, []int64{}).Return(nil)
	items.On("DeleteByListingIDs", mock.Anything, []int64{}).Return(nil)
	listings.On("DeleteByCardID", mock.Anything, int64(99)).Return(nil)
	cards.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 99)
	assertHTTPStatus(t, err, http.StatusNotFound)

	orders.AssertNotCalled(t, "UpdateTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCardUsecase_Delete_RecalcFailureIs503(t *testing.T) {
	cards := new(CardRepoMock)
	listings := new(ListingRepoMock)
	slabs := new(GradeSlabRepoMock)
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)

	tx := txManagerStub{repos: txReposStub{
		cards:      cards,
		listings:   listings,
		slabs:      slabs,
		orders:     orders,
		orderItems: items,
	}}
	totals := usecase.NewOrderTotalsUsecase(orders, items, usecase.ZeroTax)
	uc := usecase.NewCardUsecase(cards, tx, totals)

	listings.On("ListByCardID", mock.Anything, int64(1)).Return([]model.Listing{{ID: 1, CardID: 1}}, nil)
	items.On("ListOrderIDsByListingIDs", mock.Anything, []int64{1}).Return([]int64{1001}, nil)
	slabs.On("DeleteByListingIDs", mock.Anything, []int64{1}).Return(nil)
	items.On("DeleteByListingIDs", mock.Anything, []int64{1}).Return(nil)
	listings.On("DeleteByCardID", mock.Anything, int64(1)).Return(nil)
	cards.On("Delete", mock.Anything, int64(1)).Return(nil)

	items.On("ListByOrderID", mock.Anything, int64(1001)).Return([]model.OrderItem{}, errors.New("connection reset"))

	err := uc.Delete(context.Background(), 1)
	assertHTTPStatus(t, err, http.StatusServiceUnavailable)
}
