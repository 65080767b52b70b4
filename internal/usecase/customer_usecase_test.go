package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"
	"pokebase/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Customer)
	return cs, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerUsecase_List_DerivesTotalOrders(t *testing.T) {
	customers := new(CustomerRepoMock)
	orders := new(OrderRepoMock)
	uc := usecase.NewCustomerUsecase(customers, orders)

	customers.On("List", mock.Anything).Return([]model.Customer{
		{ID: 1, Email: "ash@example.com", Name: "Ash Ketchum"},
		{ID: 2, Email: "misty@example.com", Name: "Misty Williams"},
	}, nil)
	orders.On("CountByCustomerID", mock.Anything, int64(1)).Return(int64(2), nil)
	orders.On("CountByCustomerID", mock.Anything, int64(2)).Return(int64(0), nil)

	outs, err := uc.List(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, outs, 2) {
		assert.Equal(t, int64(2), outs[0].TotalOrders)
		assert.Equal(t, int64(0), outs[1].TotalOrders)
	}
}

func TestCustomerUsecase_Create_RequiresEmailAndName(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers, new(OrderRepoMock))

	_, err := uc.Create(context.Background(), usecase.CustomerInput{Name: "Ash Ketchum"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.Create(context.Background(), usecase.CustomerInput{Email: "   ", Name: "Ash Ketchum"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerUsecase_Create_TrimsFields(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers, new(OrderRepoMock))

	customers.On("Create", mock.Anything, model.Customer{
		Email: "ash@example.com",
		Name:  "Ash Ketchum",
	}).Return(int64(10), nil)

	id, err := uc.Create(context.Background(), usecase.CustomerInput{
		Email: "  ash@example.com ",
		Name:  " Ash Ketchum ",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), id)

	customers.AssertExpectations(t)
}

func TestCustomerUsecase_Update_NotFound(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers, new(OrderRepoMock))

	customers.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.Update(context.Background(), 99, usecase.CustomerInput{
		Email: "ash@example.com",
		Name:  "Ash Ketchum",
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
}
