package usecase

import (
	"context"
	"sync"

	repo "pokebase/internal/repository"

	"github.com/shopspring/decimal"
)

// 税額ポリシー。小計から税額を導く。
type TaxPolicy func(subtotal decimal.Decimal) decimal.Decimal

// 現行ポリシーは税ゼロ。
func ZeroTax(subtotal decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// 税率ベースのポリシー（rateは0.08など）。
func RateTax(rate decimal.Decimal) TaxPolicy {
	return func(subtotal decimal.Decimal) decimal.Decimal {
		return subtotal.Mul(rate)
	}
}

// 注文単位のロック。refsは待機中を含む保持数で、0になったらmapから消す。
type orderLock struct {
	mu   sync.Mutex
	refs int
}

// OrderTotalsUsecase は注文のsubtotal/tax/totalを明細から再計算して保存する。
// 明細のcreate/update/deleteが確定した直後に呼ばれる。
// 状態は持たない。読むのも書くのも注文・明細ストアだけ。
type OrderTotalsUsecase struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	tax        TaxPolicy

	//同一注文の再計算を直列化する（read-writeの交錯防止）
	mu    sync.Mutex
	locks map[int64]*orderLock
}

func NewOrderTotalsUsecase(orders repo.OrderRepository, orderItems repo.OrderItemRepository, tax TaxPolicy) *OrderTotalsUsecase {
	if tax == nil {
		tax = ZeroTax
	}
	return &OrderTotalsUsecase{
		orders:     orders,
		orderItems: orderItems,
		tax:        tax,
		locks:      map[int64]*orderLock{},
	}
}

func (u *OrderTotalsUsecase) lockOrder(orderID int64) *orderLock {
	u.mu.Lock()
	l, ok := u.locks[orderID]
	if !ok {
		l = &orderLock{}
		u.locks[orderID] = l
	}
	l.refs++
	u.mu.Unlock()

	l.mu.Lock()
	return l
}

func (u *OrderTotalsUsecase) unlockOrder(orderID int64, l *orderLock) {
	l.mu.Unlock()

	u.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(u.locks, orderID)
	}
	u.mu.Unlock()
}

// Recalculate は現在の明細からsubtotal/tax/totalを計算し、
// その3列だけを部分更新する。明細ゼロ件は合計ゼロ（エラーではない）。
// 注文が存在しない（0行更新）ならrepository.ErrNotFound、
// ストア障害は読み書きで最初に出たエラーをそのまま返す。readが失敗したら書かない。
func (u *OrderTotalsUsecase) Recalculate(ctx context.Context, orderID int64) error {
	l := u.lockOrder(orderID)
	defer u.unlockOrder(orderID, l)

	items, err := u.orderItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	//丸めは合計に対して一回だけ（行ごとに丸めると誤差が積む）
	subtotal = subtotal.Round(2)
	tax := u.tax(subtotal).Round(2)
	total := subtotal.Add(tax).Round(2)

	return u.orders.UpdateTotals(ctx, orderID, subtotal, tax, total)
}
