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

type GradingCompanyRepoMock struct{ mock.Mock }

func (m *GradingCompanyRepoMock) List(ctx context.Context) ([]model.GradingCompany, error) {
	args := m.Called(ctx)
	gs, _ := args.Get(0).([]model.GradingCompany)
	return gs, args.Error(1)
}

func (m *GradingCompanyRepoMock) FindByID(ctx context.Context, id int64) (model.GradingCompany, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(model.GradingCompany)
	return g, args.Error(1)
}

func (m *GradingCompanyRepoMock) Create(ctx context.Context, gc model.GradingCompany) (int64, error) {
	args := m.Called(ctx, gc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *GradingCompanyRepoMock) Update(ctx context.Context, gc model.GradingCompany) error {
	args := m.Called(ctx, gc)
	return args.Error(0)
}

func (m *GradingCompanyRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGradingCompanyUsecase_Create(t *testing.T) {
	companies := new(GradingCompanyRepoMock)
	uc := usecase.NewGradingCompanyUsecase(companies)

	companies.On("Create", mock.Anything, model.GradingCompany{
		Name:       "PSA",
		GradeScale: model.GradeScale10,
		URL:        "https://www.psacard.com",
	}).Return(int64(1), nil)

	id, err := uc.Create(context.Background(), usecase.GradingCompanyInput{
		Name:       "PSA",
		GradeScale: "10",
		URL:        "https://www.psacard.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestGradingCompanyUsecase_Create_InvalidScale(t *testing.T) {
	companies := new(GradingCompanyRepoMock)
	uc := usecase.NewGradingCompanyUsecase(companies)

	_, err := uc.Create(context.Background(), usecase.GradingCompanyInput{
		Name:       "PSA",
		GradeScale: "5",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGradingCompanyUsecase_Delete_NotFound(t *testing.T) {
	companies := new(GradingCompanyRepoMock)
	uc := usecase.NewGradingCompanyUsecase(companies)

	companies.On("Delete", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 9)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
