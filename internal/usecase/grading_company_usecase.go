package usecase

import (
	"context"
	"net/http"
	"strings"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"
)

// /api/grading-companies の業務ロジック
type GradingCompanyUsecase struct {
	companies repo.GradingCompanyRepository
}

func NewGradingCompanyUsecase(companies repo.GradingCompanyRepository) *GradingCompanyUsecase {
	return &GradingCompanyUsecase{companies: companies}
}

type GradingCompanyInput struct {
	Name       string
	GradeScale string
	URL        string
}

func (u *GradingCompanyUsecase) List(ctx context.Context) ([]model.GradingCompany, error) {
	companies, err := u.companies.List(ctx)
	if err != nil {
		return []model.GradingCompany{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return companies, nil
}

func (u *GradingCompanyUsecase) Create(ctx context.Context, in GradingCompanyInput) (int64, error) {
	if err := validateGradingCompanyInput(in); err != nil {
		return 0, err
	}

	id, err := u.companies.Create(ctx, model.GradingCompany{
		Name:       strings.TrimSpace(in.Name),
		GradeScale: model.GradeScale(in.GradeScale),
		URL:        in.URL,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *GradingCompanyUsecase) Update(ctx context.Context, id int64, in GradingCompanyInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid company_id")
	}
	if err := validateGradingCompanyInput(in); err != nil {
		return err
	}

	err := u.companies.Update(ctx, model.GradingCompany{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		GradeScale: model.GradeScale(in.GradeScale),
		URL:        in.URL,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *GradingCompanyUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid company_id")
	}

	err := u.companies.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateGradingCompanyInput(in GradingCompanyInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.GradeScale) == "" {
		return NewHTTPError(http.StatusBadRequest, "name and grade_scale are required")
	}
	scale := model.GradeScale(in.GradeScale)
	if scale != model.GradeScale10 && scale != model.GradeScale100 {
		return NewHTTPError(http.StatusBadRequest, "invalid grade_scale")
	}
	return nil
}
