package usecase

import (
	"context"
	"net/http"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// スラブ（/api/grade-slabs と /api/listings/:id/slab）の業務ロジック
type GradeSlabUsecase struct {
	slabs     repo.GradeSlabRepository
	listings  repo.ListingRepository
	companies repo.GradingCompanyRepository
}

func NewGradeSlabUsecase(slabs repo.GradeSlabRepository, listings repo.ListingRepository, companies repo.GradingCompanyRepository) *GradeSlabUsecase {
	return &GradeSlabUsecase{slabs: slabs, listings: listings, companies: companies}
}

type GradeSlabInput struct {
	CompanyID int64
	Grade     decimal.Decimal
}

// 鑑定会社を載せて返す
type GradeSlabOutput struct {
	SlabID    int64                 `json:"slab_id"`
	CompanyID int64                 `json:"company_id"`
	Grade     decimal.Decimal       `json:"grade"`
	Company   *model.GradingCompany `json:"company"`
}

func (u *GradeSlabUsecase) List(ctx context.Context) ([]GradeSlabOutput, error) {
	slabs, err := u.slabs.List(ctx)
	if err != nil {
		return []GradeSlabOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]GradeSlabOutput, 0, len(slabs))
	for _, s := range slabs {
		out := GradeSlabOutput{SlabID: s.SlabID, CompanyID: s.CompanyID, Grade: s.Grade}

		company, err := u.companies.FindByID(ctx, s.CompanyID)
		if err == nil {
			out.Company = &company
		} else if err != repo.ErrNotFound {
			return []GradeSlabOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = append(outs, out)
	}
	return outs, nil
}

func (u *GradeSlabUsecase) GetForListing(ctx context.Context, listingID int64) (GradeSlabOutput, error) {
	if listingID <= 0 {
		return GradeSlabOutput{}, NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}

	s, err := u.slabs.FindByListingID(ctx, listingID)
	if err == repo.ErrNotFound {
		return GradeSlabOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return GradeSlabOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := GradeSlabOutput{SlabID: s.SlabID, CompanyID: s.CompanyID, Grade: s.Grade}
	company, err := u.companies.FindByID(ctx, s.CompanyID)
	if err == nil {
		out.Company = &company
	} else if err != repo.ErrNotFound {
		return GradeSlabOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

// UpsertForListing はgraded出品への1:1スラブの作成・上書き。
func (u *GradeSlabUsecase) UpsertForListing(ctx context.Context, listingID int64, in GradeSlabInput) error {
	if listingID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}
	if in.CompanyID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid company_id")
	}
	if in.Grade.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "invalid grade")
	}

	//出品の存在確認（gradedのみスラブを持てる）
	l, err := u.listings.FindByID(ctx, listingID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if l.Type != model.ListingTypeGraded {
		return NewHTTPError(http.StatusBadRequest, "listing is not graded")
	}

	//鑑定会社の存在確認
	_, err = u.companies.FindByID(ctx, in.CompanyID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "grading company not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.slabs.Upsert(ctx, model.GradeSlab{
		SlabID:    listingID,
		CompanyID: in.CompanyID,
		Grade:     in.Grade.Round(1),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *GradeSlabUsecase) DeleteForListing(ctx context.Context, listingID int64) error {
	if listingID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}

	err := u.slabs.DeleteByListingID(ctx, listingID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
