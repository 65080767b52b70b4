package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// BASE_URL未設定ならスキップ（DBと起動済みサーバーが前提のため）
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL is not set; start the api server and set BASE_URL to run e2e tests")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type Order struct {
	ID         int64  `json:"order_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	Subtotal   string `json:"subtotal"`
	Tax        string `json:"tax"`
	Total      string `json:"total"`
}

type OrderItem struct {
	OrderID   int64  `json:"order_id"`
	ListingID int64  `json:"listing_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderItemRequest struct {
	ListingID int64  `json:"listing_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeOrder(t *testing.T, body []byte) Order {
	t.Helper()
	var v Order
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(Order) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeOrderItems(t *testing.T, body []byte) []OrderItem {
	t.Helper()
	var v []OrderItem
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]OrderItem) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

// /api/resetでシードデータに戻す
func resetStore(t *testing.T, c *TestClient, ctx context.Context) {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/reset", nil)
	requireStatus(t, resp, http.StatusOK, body)
}

// /api/orders/{id} を取得
func getOrder(t *testing.T, c *TestClient, ctx context.Context, orderID int64) Order {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/orders/"+toStr(orderID), nil)
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecodeOrder(t, body)
}

// /api/orders/{id}/items を取得
func listOrderItems(t *testing.T, c *TestClient, ctx context.Context, orderID int64) []OrderItem {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/orders/"+toStr(orderID)+"/items", nil)
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecodeOrderItems(t, body)
}

// 明細をupsert
func putOrderItem(t *testing.T, c *TestClient, ctx context.Context, orderID int64, req OrderItemRequest) {
	t.Helper()

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(OrderItemRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/orders/"+toStr(orderID)+"/items", b)
	requireStatus(t, resp, http.StatusCreated, body)
}

// 明細の数量を更新
func updateOrderItem(t *testing.T, c *TestClient, ctx context.Context, orderID int64, listingID int64, req OrderItemRequest) {
	t.Helper()

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(OrderItemRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPut, "/api/orders/"+toStr(orderID)+"/items/"+toStr(listingID), b)
	requireStatus(t, resp, http.StatusOK, body)
}

// 明細を削除
func deleteOrderItem(t *testing.T, c *TestClient, ctx context.Context, orderID int64, listingID int64) {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodDelete, "/api/orders/"+toStr(orderID)+"/items/"+toStr(listingID), nil)
	requireStatus(t, resp, http.StatusNoContent, body)
}

// 合計3列が期待値どおりか確認
func requireTotals(t *testing.T, o Order, subtotal, tax, total string) {
	t.Helper()
	if o.Subtotal != subtotal || o.Tax != tax || o.Total != total {
		t.Fatalf("totals mismatch: want=(%s, %s, %s) got=(%s, %s, %s)",
			subtotal, tax, total, o.Subtotal, o.Tax, o.Total)
	}
}
