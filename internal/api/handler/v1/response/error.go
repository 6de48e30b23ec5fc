package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Marketplace status codes kept for wire compatibility with existing
// clients. They sit outside the IANA registry on purpose.
const (
	StatusItemNotListed      = 445
	StatusPelangganNotListed = 446

	StatusLessBalance       = 447
	StatusInsufficientGoods = 448
	StatusSaldoBroken       = 449
	StatusOutOfStock        = 452
	StatusNewStock          = 453
)

type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v (code=%v, statusCode=%v)", e.Msg, e.Code, e.StatusCode)
}

func RenderErr(ctx *gin.Context, err *Err) {
	zap.L().Error("request failed",
		zap.Int("status", err.StatusCode),
		zap.String("code", err.Code),
		zap.String("error", err.Msg),
		zap.String("path", ctx.Request.URL.Path),
	)

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrTooManyAttempts(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        "permission denied",
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}

// ErrItemNotListed is the purchase path's answer when id_barang does
// not exist.
func ErrItemNotListed() *Err {
	return &Err{
		StatusCode: StatusItemNotListed,
		Code:       "ID_BARANG_NOT_LISTED",
		Msg:        "Anda bisa cek lagi ID produk yang ingin anda beli",
	}
}

func ErrPelangganNotListed() *Err {
	return &Err{
		StatusCode: StatusPelangganNotListed,
		Code:       "ID_PELANGGAN_NOT_LISTED",
		Msg:        "ID yang anda miliki tidak terdaftar untuk melakukan transaksi",
	}
}

// ErrLessBalance means the saldo cannot cover the total price.
func ErrLessBalance() *Err {
	return &Err{
		StatusCode: StatusLessBalance,
		Code:       "LESS_BALANCE",
		Msg:        "Mohon maaf saldo anda tidak mencukupi untuk melakukan pembelian, mohon cek saldo anda untuk melakukan pembelian",
	}
}

// ErrInsufficientGoods means the purchase asked for more units than the
// item has in stock.
func ErrInsufficientGoods() *Err {
	return &Err{
		StatusCode: StatusInsufficientGoods,
		Code:       "MORE_STUFF",
		Msg:        "Mohon maaf stok kami belum mencukupi dengan apa yang anda inginkan",
	}
}

func ErrSaldoBroken() *Err {
	return &Err{
		StatusCode: StatusSaldoBroken,
		Code:       "BROKEN_SISTEM",
		Msg:        "Gagal untuk menambahkan saldo",
	}
}

// ErrOutOfStock is the stock-reduction path's answer when the item has
// fewer units than the reduction asks for.
func ErrOutOfStock() *Err {
	return &Err{
		StatusCode: StatusOutOfStock,
		Code:       "NOT_HAVE_ANY_STOCK",
		Msg:        "Maaf atas ketidaknyamanan-nya, mohon isi ulang stok dengan kapasitas maksimal yang kami miliki",
	}
}

func ErrNewStock() *Err {
	return &Err{
		StatusCode: StatusNewStock,
		Code:       "NOT_NEW_STOCK",
		Msg:        "Stok anda gagal ditambahkan",
	}
}
