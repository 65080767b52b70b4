package usecase

import (
	"context"
	"net/http"
	"strings"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"
)

// /api/cards の業務ロジック
type CardUsecase struct {
	cards  repo.CardRepository
	tx     repo.TransactionManager
	totals *OrderTotalsUsecase
}

func NewCardUsecase(cards repo.CardRepository, tx repo.TransactionManager, totals *OrderTotalsUsecase) *CardUsecase {
	return &CardUsecase{cards: cards, tx: tx, totals: totals}
}

type CardInput struct {
	SetName    string
	CardNumber string
	Name       string
	Variant    string
	Year       *int
}

func (u *CardUsecase) List(ctx context.Context) ([]model.Card, error) {
	cards, err := u.cards.List(ctx)
	if err != nil {
		return []model.Card{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cards, nil
}

func (u *CardUsecase) Create(ctx context.Context, in CardInput) (int64, error) {
	if err := validateCardInput(in); err != nil {
		return 0, err
	}

	id, err := u.cards.Create(ctx, model.Card{
		SetName:    strings.TrimSpace(in.SetName),
		CardNumber: strings.TrimSpace(in.CardNumber),
		Name:       strings.TrimSpace(in.Name),
		Variant:    model.CardVariant(in.Variant),
		Year:       in.Year,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *CardUsecase) Update(ctx context.Context, id int64, in CardInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid card_id")
	}
	if err := validateCardInput(in); err != nil {
		return err
	}

	err := u.cards.Update(ctx, model.Card{
		ID:         id,
		SetName:    strings.TrimSpace(in.SetName),
		CardNumber: strings.TrimSpace(in.CardNumber),
		Name:       strings.TrimSpace(in.Name),
		Variant:    model.CardVariant(in.Variant),
		Year:       in.Year,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Delete はカードと配下（出品→スラブ・注文明細）をまとめて消す。
// 明細が消えた注文はコミット後に合計を再計算する。
func (u *CardUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid card_id")
	}

	var affectedOrders []int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		listings, err := r.Listings().ListByCardID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		listingIDs := make([]int64, 0, len(listings))
		for _, l := range listings {
			listingIDs = append(listingIDs, l.ID)
		}

		//消える明細の親注文を先に控える
		affectedOrders, err = r.OrderItems().ListOrderIDsByListingIDs(ctx, listingIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.GradeSlabs().DeleteByListingIDs(ctx, listingIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().DeleteByListingIDs(ctx, listingIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Listings().DeleteByCardID(ctx, id); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		err = r.Cards().Delete(ctx, id)
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

	//明細の削除が確定してから再計算
	for _, orderID := range affectedOrders {
		if err := u.totals.Recalculate(ctx, orderID); err != nil {
			return recalcError(err)
		}
	}
	return nil
}

func validateCardInput(in CardInput) error {
	if strings.TrimSpace(in.SetName) == "" || strings.TrimSpace(in.CardNumber) == "" || strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "set_name, card_number and name are required")
	}
	if !model.CardVariant(in.Variant).Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	return nil
}

// 再計算の失敗は握りつぶさず呼び出し元に返す。
// 注文が消えていた場合だけ404、それ以外はストア障害として503。
func recalcError(err error) error {
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	return NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
}
