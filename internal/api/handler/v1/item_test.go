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

type stubItemService struct {
	reduceErr error
	addErr    error
}

func (s *stubItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	return domain.Item{}, nil
}

func (s *stubItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	item.ID = 1

	return item, nil
}

func (s *stubItemService) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	return item, nil
}

func (s *stubItemService) DeleteItem(ctx context.Context, id uint) error {
	return nil
}

func (s *stubItemService) ReduceStock(ctx context.Context, id uint, quantity int) error {
	return s.reduceErr
}

func (s *stubItemService) AddStock(ctx context.Context, id uint, quantity int) error {
	return s.addErr
}

type stubPenjualChecker struct {
	err error
}

func (s *stubPenjualChecker) GetPenjualByEmail(ctx context.Context, email string) (domain.Penjual, error) {
	if s.err != nil {
		return domain.Penjual{}, s.err
	}

	return domain.Penjual{ID: 1, Email: email}, nil
}

func newItemTestRouter(svc ItemService, penjuals PenjualChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewItemHandler(svc, penjuals)
	router.PUT("/item/reduceStok", handler.HandleReduceStok)
	router.PUT("/item/addedStok", handler.HandleAddedStok)
	router.POST("/item/uploud-item", handler.HandleCreateItem)

	return router
}

func TestHandleReduceStok(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *stubItemService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"id":1,"newStok":4}`,
			svc:        &stubItemService{},
			wantStatus: http.StatusOK,
			wantBody:   `"reduce_stok":4`,
		},
		{
			name:       "insufficient stock",
			body:       `{"id":1,"newStok":400}`,
			svc:        &stubItemService{reduceErr: service.ErrInsufficientStock},
			wantStatus: response.StatusOutOfStock,
			wantBody:   `"code":"NOT_HAVE_ANY_STOCK"`,
		},
		{
			name:       "unknown item",
			body:       `{"id":99,"newStok":1}`,
			svc:        &stubItemService{reduceErr: service.ErrItemNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newItemTestRouter(tt.svc, &stubPenjualChecker{})

			req := httptest.NewRequest(http.MethodPut, "/item/reduceStok", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleAddedStok(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *stubItemService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"id":1,"newStok":10}`,
			svc:        &stubItemService{},
			wantStatus: http.StatusOK,
			wantBody:   "Stok berhasil ditambahkan",
		},
		{
			name:       "unknown item",
			body:       `{"id":99,"newStok":10}`,
			svc:        &stubItemService{addErr: service.ErrItemNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   "not found",
		},
		{
			name:       "store failure",
			body:       `{"id":1,"newStok":10}`,
			svc:        &stubItemService{addErr: context.DeadlineExceeded},
			wantStatus: response.StatusNewStock,
			wantBody:   `"code":"NOT_NEW_STOCK"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newItemTestRouter(tt.svc, &stubPenjualChecker{})

			req := httptest.NewRequest(http.MethodPut, "/item/addedStok", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleCreateItem_RejectsUnknownPenjualEmail(t *testing.T) {
	router := newItemTestRouter(&stubItemService{}, &stubPenjualChecker{err: service.ErrPenjualNotFound})

	body := `{"nama_barang":"beras","jenis_barang":"sembako","stok_barang":10,"harga_barang":50,"email":"ghost@example.com","lokasi_penjual":"Jakarta"}`
	req := httptest.NewRequest(http.MethodPost, "/item/uploud-item", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "not registered as a penjual")
}
