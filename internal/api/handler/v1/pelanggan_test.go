package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pasarku/pasarku-api/internal/api/handler/v1/response"
	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/service"
)

type stubPelangganService struct {
	topUpErr error
}

func (s *stubPelangganService) GetPelanggan(ctx context.Context, id uint) (domain.Pelanggan, error) {
	return domain.Pelanggan{}, nil
}

func (s *stubPelangganService) ListPelanggan(ctx context.Context) ([]domain.Pelanggan, error) {
	return nil, nil
}

func (s *stubPelangganService) CreatePelanggan(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error) {
	return pelanggan, nil
}

func (s *stubPelangganService) UpdatePelanggan(ctx context.Context, id uint, name, email string) error {
	return nil
}

func (s *stubPelangganService) DeletePelanggan(ctx context.Context, id uint) error {
	return nil
}

func (s *stubPelangganService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	return nil
}

func (s *stubPelangganService) TopUpSaldo(ctx context.Context, id uint, amount int) error {
	return s.topUpErr
}

type stubPurchaseService struct {
	receipt domain.PurchaseReceipt
	err     error
}

func (s *stubPurchaseService) Purchase(ctx context.Context, itemID, pelangganID uint, quantity int) (domain.PurchaseReceipt, error) {
	if s.err != nil {
		return domain.PurchaseReceipt{}, s.err
	}

	return s.receipt, nil
}

type stubItemCatalog struct{}

func (s *stubItemCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	return []domain.Item{}, nil
}

func (s *stubItemCatalog) PaginateItems(ctx context.Context, pageNumber, pageSize int, sort, search string) (domain.ItemPage, error) {
	return domain.ItemPage{PageNumber: pageNumber, PageSize: pageSize}, nil
}

func newPelangganTestRouter(svc PelangganService, purchases PurchaseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewPelangganHandler(svc, purchases, &stubItemCatalog{})
	router.PUT("/pelanggan/transaksi", handler.HandleBuyItem)
	router.PUT("/pelanggan/:id/top-up", handler.HandleTopUpSaldo)

	return router
}

func TestHandleBuyItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		purchase   *stubPurchaseService
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"id_barang":1,"id_pelanggan":7,"banyak_barang":3,"jenis_barang":"sembako"}`,
			purchase: &stubPurchaseService{receipt: domain.PurchaseReceipt{
				ItemID: 1, PelangganID: 7, Quantity: 3, HargaTotal: 150,
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"hargaTotal":150`,
		},
		{
			name:       "unknown item",
			body:       `{"id_barang":99,"id_pelanggan":7,"banyak_barang":1}`,
			purchase:   &stubPurchaseService{err: service.ErrItemNotFound},
			wantStatus: response.StatusItemNotListed,
			wantBody:   `"code":"ID_BARANG_NOT_LISTED"`,
		},
		{
			name:       "unknown pelanggan",
			body:       `{"id_barang":1,"id_pelanggan":99,"banyak_barang":1}`,
			purchase:   &stubPurchaseService{err: service.ErrPelangganNotFound},
			wantStatus: response.StatusPelangganNotListed,
			wantBody:   `"code":"ID_PELANGGAN_NOT_LISTED"`,
		},
		{
			name:       "insufficient stock",
			body:       `{"id_barang":1,"id_pelanggan":7,"banyak_barang":500}`,
			purchase:   &stubPurchaseService{err: service.ErrInsufficientStock},
			wantStatus: response.StatusInsufficientGoods,
			wantBody:   `"code":"MORE_STUFF"`,
		},
		{
			name:       "insufficient saldo",
			body:       `{"id_barang":1,"id_pelanggan":7,"banyak_barang":3}`,
			purchase:   &stubPurchaseService{err: service.ErrInsufficientSaldo},
			wantStatus: response.StatusLessBalance,
			wantBody:   `"code":"LESS_BALANCE"`,
		},
		{
			name:       "malformed body",
			body:       `{"id_barang":"not-a-number"}`,
			purchase:   &stubPurchaseService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPelangganTestRouter(&stubPelangganService{}, tt.purchase)

			req := httptest.NewRequest(http.MethodPut, "/pelanggan/transaksi", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleTopUpSaldo(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		body       string
		svc        *stubPelangganService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			url:        "/pelanggan/7/top-up",
			body:       `{"amount":500}`,
			svc:        &stubPelangganService{},
			wantStatus: http.StatusOK,
			wantBody:   "Saldo berhasil ditambahkan",
		},
		{
			name:       "zero amount rejected before the service",
			url:        "/pelanggan/7/top-up",
			body:       `{"amount":0}`,
			svc:        &stubPelangganService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error"`,
		},
		{
			name:       "unknown pelanggan",
			url:        "/pelanggan/99/top-up",
			body:       `{"amount":500}`,
			svc:        &stubPelangganService{topUpErr: service.ErrPelangganNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   "not found",
		},
		{
			name:       "store failure",
			url:        "/pelanggan/7/top-up",
			body:       `{"amount":500}`,
			svc:        &stubPelangganService{topUpErr: context.DeadlineExceeded},
			wantStatus: response.StatusSaldoBroken,
			wantBody:   `"code":"BROKEN_SISTEM"`,
		},
		{
			name:       "invalid id",
			url:        "/pelanggan/abc/top-up",
			body:       `{"amount":500}`,
			svc:        &stubPelangganService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid pelanggan ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPelangganTestRouter(tt.svc, &stubPurchaseService{})

			req := httptest.NewRequest(http.MethodPut, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
