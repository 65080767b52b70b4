package usecase

import (
	"context"
	"net/http"
	"time"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// /api/orders の業務ロジック
type OrderUsecase struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	tx        repo.TransactionManager
}

func NewOrderUsecase(orders repo.OrderRepository, customers repo.CustomerRepository, tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{orders: orders, customers: customers, tx: tx}
}

type OrderInput struct {
	CustomerID int64
	OrderDate  *time.Time
	Status     string

	//作成時の初期値（通常はゼロ）。以後は明細の再計算だけが書く。
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// 顧客情報を載せて返す
type OrderOutput struct {
	ID         int64             `json:"order_id"`
	CustomerID int64             `json:"customer_id"`
	OrderDate  time.Time         `json:"order_date"`
	Status     model.OrderStatus `json:"status"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
	Tax        decimal.Decimal   `json:"tax"`
	Total      decimal.Decimal   `json:"total"`
	Customer   *model.Customer   `json:"customer"`
}

func (u *OrderUsecase) List(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out := toOrderOutput(o)

		customer, err := u.customers.FindByID(ctx, o.CustomerID)
		if err == nil {
			out.Customer = &customer
		} else if err != repo.ErrNotFound {
			return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = append(outs, out)
	}
	return outs, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := toOrderOutput(o)
	customer, err := u.customers.FindByID(ctx, o.CustomerID)
	if err == nil {
		out.Customer = &customer
	} else if err != repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

func (u *OrderUsecase) Create(ctx context.Context, in OrderInput) (int64, error) {
	o, err := u.buildOrder(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := u.orders.Create(ctx, o)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

// Update はヘッダ項目（customer_id / order_date / status）だけを書き換える。
// subtotal/tax/totalは再計算側の持ち物なので直接編集では触らない。
func (u *OrderUsecase) Update(ctx context.Context, orderID int64, in OrderInput) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	o, err := u.buildOrder(ctx, in)
	if err != nil {
		return err
	}
	o.ID = orderID

	err = u.orders.UpdateHeader(ctx, o)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Delete は注文と明細をまとめて消す。
func (u *OrderUsecase) Delete(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		err := r.Orders().Delete(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func (u *OrderUsecase) buildOrder(ctx context.Context, in OrderInput) (model.Order, error) {
	if in.CustomerID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}

	status := model.OrderStatus(in.Status)
	if in.Status == "" {
		status = model.OrderStatusPending
	}
	if !status.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	if in.Subtotal.IsNegative() || in.Tax.IsNegative() || in.Total.IsNegative() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "totals must not be negative")
	}
	if !in.Total.Equal(in.Subtotal.Add(in.Tax)) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "total must equal subtotal + tax")
	}

	//顧客の存在確認
	_, err := u.customers.FindByID(ctx, in.CustomerID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orderDate := time.Now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	return model.Order{
		CustomerID: in.CustomerID,
		OrderDate:  orderDate,
		Status:     status,
		Subtotal:   in.Subtotal.Round(2),
		Tax:        in.Tax.Round(2),
		Total:      in.Total.Round(2),
	}, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Status:     o.Status,
		Subtotal:   o.Subtotal,
		Tax:        o.Tax,
		Total:      o.Total,
	}
}
