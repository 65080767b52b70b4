package usecase

import (
	"context"
	"net/http"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// /api/listings の業務ロジック
type ListingUsecase struct {
	listings repo.ListingRepository
	cards    repo.CardRepository
	tx       repo.TransactionManager
	totals   *OrderTotalsUsecase
}

func NewListingUsecase(listings repo.ListingRepository, cards repo.CardRepository, tx repo.TransactionManager, totals *OrderTotalsUsecase) *ListingUsecase {
	return &ListingUsecase{listings: listings, cards: cards, tx: tx, totals: totals}
}

type ListingInput struct {
	CardID            int64
	Price             decimal.Decimal
	Type              string
	CardCondition     string
	QuantityAvailable int64
	Status            string
}

// カード情報を載せて返す
type ListingOutput struct {
	ID                int64                `json:"listing_id"`
	CardID            int64                `json:"card_id"`
	Price             decimal.Decimal      `json:"price"`
	Type              model.ListingType    `json:"type"`
	CardCondition     *model.CardCondition `json:"card_condition"`
	QuantityAvailable int64                `json:"quantity_available"`
	Status            model.ListingStatus  `json:"status"`
	Card              *model.Card          `json:"card"`
}

func (u *ListingUsecase) List(ctx context.Context) ([]ListingOutput, error) {
	listings, err := u.listings.List(ctx)
	if err != nil {
		return []ListingOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ListingOutput, 0, len(listings))
	for _, l := range listings {
		out := toListingOutput(l)

		//カードが消えていてもnullで返す
		card, err := u.cards.FindByID(ctx, l.CardID)
		if err == nil {
			out.Card = &card
		} else if err != repo.ErrNotFound {
			return []ListingOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = append(outs, out)
	}
	return outs, nil
}

func (u *ListingUsecase) Create(ctx context.Context, in ListingInput) (int64, error) {
	l, err := u.buildListing(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := u.listings.Create(ctx, l)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *ListingUsecase) Update(ctx context.Context, id int64, in ListingInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}

	l, err := u.buildListing(ctx, in)
	if err != nil {
		return err
	}
	l.ID = id

	err = u.listings.Update(ctx, l)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Delete は出品とスラブ・注文明細をまとめて消し、
// 明細が消えた注文はコミット後に合計を再計算する。
func (u *ListingUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}

	var affectedOrders []int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		affectedOrders, err = r.OrderItems().ListOrderIDsByListingIDs(ctx, []int64{id})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.GradeSlabs().DeleteByListingIDs(ctx, []int64{id}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().DeleteByListingIDs(ctx, []int64{id}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		err = r.Listings().Delete(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, orderID := range affectedOrders {
		if err := u.totals.Recalculate(ctx, orderID); err != nil {
			return recalcError(err)
		}
	}
	return nil
}

// 入力チェック＋モデル組み立て。rawは状態ランク必須、gradedはランクなし。
func (u *ListingUsecase) buildListing(ctx context.Context, in ListingInput) (model.Listing, error) {
	if in.CardID <= 0 {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid card_id")
	}
	if in.Price.IsNegative() {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.QuantityAvailable < 0 {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid quantity_available")
	}

	t := model.ListingType(in.Type)
	if t != model.ListingTypeRaw && t != model.ListingTypeGraded {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid type")
	}

	status := model.ListingStatus(in.Status)
	if status != model.ListingStatusActive && status != model.ListingStatusSoldOut && status != model.ListingStatusHidden {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var cond *model.CardCondition
	if t == model.ListingTypeGraded {
		if in.CardCondition != "" {
			return model.Listing{}, NewHTTPError(http.StatusBadRequest, "graded listing must not have card_condition")
		}
	} else {
		c := model.CardCondition(in.CardCondition)
		if !c.Valid() {
			return model.Listing{}, NewHTTPError(http.StatusBadRequest, "invalid card_condition")
		}
		cond = &c
	}

	//カードの存在確認
	_, err := u.cards.FindByID(ctx, in.CardID)
	if err == repo.ErrNotFound {
		return model.Listing{}, NewHTTPError(http.StatusBadRequest, "card not found")
	}
	if err != nil {
		return model.Listing{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return model.Listing{
		CardID:            in.CardID,
		Price:             in.Price.Round(2),
		Type:              t,
		CardCondition:     cond,
		QuantityAvailable: in.QuantityAvailable,
		Status:            status,
	}, nil
}

func toListingOutput(l model.Listing) ListingOutput {
	return ListingOutput{
		ID:                l.ID,
		CardID:            l.CardID,
		Price:             l.Price,
		Type:              l.Type,
		CardCondition:     l.CardCondition,
		QuantityAvailable: l.QuantityAvailable,
		Status:            l.Status,
	}
}
