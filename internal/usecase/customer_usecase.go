package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pokebase/internal/domain/model"
	repo "pokebase/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// /api/customers の業務ロジック
type CustomerUsecase struct {
	customers repo.CustomerRepository
	orders    repo.OrderRepository
}

func NewCustomerUsecase(customers repo.CustomerRepository, orders repo.OrderRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, orders: orders}
}

type CustomerInput struct {
	Email           string
	Name            string
	Phone           string
	ShippingAddress string
}

// total_ordersは注文テーブルから導出して載せる
type CustomerOutput struct {
	ID              int64  `json:"customer_id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
	TotalOrders     int64  `json:"total_orders"`
}

func (u *CustomerUsecase) List(ctx context.Context) ([]CustomerOutput, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return []CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		count, err := u.orders.CountByCustomerID(ctx, c.ID)
		if err != nil {
			return []CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toCustomerOutput(c, count))
	}
	return outs, nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in CustomerInput) (int64, error) {
	if err := validateCustomerInput(in); err != nil {
		return 0, err
	}

	id, err := u.customers.Create(ctx, model.Customer{
		Email:           strings.TrimSpace(in.Email),
		Name:            strings.TrimSpace(in.Name),
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id int64, in CustomerInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}
	if err := validateCustomerInput(in); err != nil {
		return err
	}

	err := u.customers.Update(ctx, model.Customer{
		ID:              id,
		Email:           strings.TrimSpace(in.Email),
		Name:            strings.TrimSpace(in.Name),
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}

	err := u.customers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateCustomerInput(in CustomerInput) error {
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "email and name are required")
	}
	return nil
}

func toCustomerOutput(c model.Customer, totalOrders int64) CustomerOutput {
	return CustomerOutput{
		ID:              c.ID,
		Email:           c.Email,
		Name:            c.Name,
		Phone:           c.Phone,
		ShippingAddress: c.ShippingAddress,
		TotalOrders:     totalOrders,
	}
}
