package usecase

import (
	"context"
	"net/http"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// /api/orders/:id/items の業務ロジック。
// 明細のcreate/update/deleteが確定するたびに親注文の合計を再計算する。
// 明細の書き込みが失敗したら再計算は走らせない。
type OrderItemUsecase struct {
	orderItems repo.OrderItemRepository
	orders     repo.OrderRepository
	listings   repo.ListingRepository
	totals     *OrderTotalsUsecase
}

func NewOrderItemUsecase(orderItems repo.OrderItemRepository, orders repo.OrderRepository, listings repo.ListingRepository, totals *OrderTotalsUsecase) *OrderItemUsecase {
	return &OrderItemUsecase{orderItems: orderItems, orders: orders, listings: listings, totals: totals}
}

type OrderItemInput struct {
	ListingID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// 出品情報を載せて返す
type OrderItemOutput struct {
	OrderID   int64           `json:"order_id"`
	ListingID int64           `json:"listing_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Listing   *model.Listing  `json:"listing"`
}

func (u *OrderItemUsecase) List(ctx context.Context, orderID int64) ([]OrderItemOutput, error) {
	if orderID <= 0 {
		return []OrderItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	if err := u.requireOrder(ctx, orderID); err != nil {
		return []OrderItemOutput{}, err
	}

	items, err := u.orderItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return []OrderItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		out := OrderItemOutput{
			OrderID:   it.OrderID,
			ListingID: it.ListingID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}

		//出品が消えていてもnullで返す
		listing, err := u.listings.FindByID(ctx, it.ListingID)
		if err == nil {
			out.Listing = &listing
		} else if err != repo.ErrNotFound {
			return []OrderItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = append(outs, out)
	}
	return outs, nil
}

func (u *OrderItemUsecase) Get(ctx context.Context, orderID int64, listingID int64) (OrderItemOutput, error) {
	if orderID <= 0 || listingID <= 0 {
		return OrderItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	it, err := u.orderItems.Find(ctx, orderID, listingID)
	if err == repo.ErrNotFound {
		return OrderItemOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := OrderItemOutput{
		OrderID:   it.OrderID,
		ListingID: it.ListingID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}

	listing, err := u.listings.FindByID(ctx, it.ListingID)
	if err == nil {
		out.Listing = &listing
	} else if err != repo.ErrNotFound {
		return OrderItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

// Create は明細の追加。(order, listing)が既にあれば数量と単価を上書き（upsert）。
func (u *OrderItemUsecase) Create(ctx context.Context, orderID int64, in OrderItemInput) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	if err := validateOrderItemInput(in); err != nil {
		return err
	}

	if err := u.requireOrder(ctx, orderID); err != nil {
		return err
	}

	//出品の存在確認
	_, err := u.listings.FindByID(ctx, in.ListingID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "listing not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.orderItems.Upsert(ctx, model.OrderItem{
		OrderID:   orderID,
		ListingID: in.ListingID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice.Round(2),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//明細の書き込みが確定したので親注文の合計を再計算
	if err := u.totals.Recalculate(ctx, orderID); err != nil {
		return recalcError(err)
	}
	return nil
}

func (u *OrderItemUsecase) Update(ctx context.Context, orderID int64, listingID int64, in OrderItemInput) error {
	if orderID <= 0 || listingID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	in.ListingID = listingID
	if err := validateOrderItemInput(in); err != nil {
		return err
	}

	err := u.orderItems.Update(ctx, model.OrderItem{
		OrderID:   orderID,
		ListingID: listingID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice.Round(2),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.totals.Recalculate(ctx, orderID); err != nil {
		return recalcError(err)
	}
	return nil
}

func (u *OrderItemUsecase) Delete(ctx context.Context, orderID int64, listingID int64) error {
	if orderID <= 0 || listingID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orderItems.Delete(ctx, orderID, listingID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.totals.Recalculate(ctx, orderID); err != nil {
		return recalcError(err)
	}
	return nil
}

func (u *OrderItemUsecase) requireOrder(ctx context.Context, orderID int64) error {
	_, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateOrderItemInput(in OrderItemInput) error {
	if in.ListingID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid listing_id")
	}
	if in.Quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if in.UnitPrice.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "invalid unit_price")
	}
	return nil
}
