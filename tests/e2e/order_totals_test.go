package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

// TAX_RATE未設定（税ゼロ）のサーバーを前提にしている。

func Test_OrderTotals_RecalculatedAfterItemChanges(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resetStore(t, c, ctx)

	//シード直後の注文1001は 149.99 + 289.00 = 438.99
	order := getOrder(t, c, ctx, 1001)
	requireTotals(t, order, "438.99", "0.00", "438.99")

	//出品2（12.50）を2点追加 → 438.99 + 25.00 = 463.99
	putOrderItem(t, c, ctx, 1001, OrderItemRequest{
		ListingID: 2,
		Quantity:  2,
		UnitPrice: "12.50",
	})
	order = getOrder(t, c, ctx, 1001)
	requireTotals(t, order, "463.99", "0.00", "463.99")

	//数量を2→4に変更 → 438.99 + 50.00 = 488.99
	updateOrderItem(t, c, ctx, 1001, 2, OrderItemRequest{
		Quantity:  4,
		UnitPrice: "12.50",
	})
	order = getOrder(t, c, ctx, 1001)
	requireTotals(t, order, "488.99", "0.00", "488.99")

	//追加した明細を削除して元の合計に戻ること
	deleteOrderItem(t, c, ctx, 1001, 2)
	order = getOrder(t, c, ctx, 1001)
	requireTotals(t, order, "438.99", "0.00", "438.99")
}

func Test_OrderTotals_EmptyOrderBecomesZero(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resetStore(t, c, ctx)

	//注文1002は明細1件（出品2、12.50×1）
	items := listOrderItems(t, c, ctx, 1002)
	if len(items) != 1 {
		t.Fatalf("order 1002 should have 1 item, got=%d", len(items))
	}

	deleteOrderItem(t, c, ctx, 1002, items[0].ListingID)

	order := getOrder(t, c, ctx, 1002)
	requireTotals(t, order, "0.00", "0.00", "0.00")
}

func Test_OrderTotals_SamePairUpsertsInsteadOfDuplicating(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resetStore(t, c, ctx)

	//同じ(order, listing)で再POSTしても明細は増えず、数量が上書きされる
	putOrderItem(t, c, ctx, 1002, OrderItemRequest{
		ListingID: 2,
		Quantity:  3,
		UnitPrice: "12.50",
	})

	items := listOrderItems(t, c, ctx, 1002)
	if len(items) != 1 {
		t.Fatalf("duplicate item row created: items=%v", items)
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity should be overwritten to 3, got=%d", items[0].Quantity)
	}

	order := getOrder(t, c, ctx, 1002)
	requireTotals(t, order, "37.50", "0.00", "37.50")
}

func Test_OrderTotals_UnknownOrderIs404(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resetStore(t, c, ctx)

	b, err := json.Marshal(OrderItemRequest{ListingID: 2, Quantity: 1, UnitPrice: "12.50"})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/orders/99999/items", b)
	requireStatus(t, resp, http.StatusNotFound, body)

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	if er.Error == "" {
		t.Fatalf("error message should not be empty: body=%s", string(body))
	}
}

func Test_DeleteListing_RecalculatesAffectedOrders(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resetStore(t, c, ctx)

	//出品3（289.00、注文1001の明細）を削除すると注文1001が再計算される
	resp, body := c.doJSON(ctx, t, http.MethodDelete, "/api/listings/3", nil)
	requireStatus(t, resp, http.StatusNoContent, body)

	order := getOrder(t, c, ctx, 1001)
	requireTotals(t, order, "149.99", "0.00", "149.99")

	//明細一覧からも消えている
	items := listOrderItems(t, c, ctx, 1001)
	for _, it := range items {
		if it.ListingID == 3 {
			t.Fatalf("order item for deleted listing still present: items=%v", items)
		}
	}
}
