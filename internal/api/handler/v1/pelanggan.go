package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pasarku/pasarku-api/internal/api/handler/v1/request"
	"github.com/pasarku/pasarku-api/internal/api/handler/v1/response"
	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/service"
)

type PelangganService interface {
	GetPelanggan(ctx context.Context, id uint) (domain.Pelanggan, error)
	ListPelanggan(ctx context.Context) ([]domain.Pelanggan, error)
	CreatePelanggan(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error)
	UpdatePelanggan(ctx context.Context, id uint, name, email string) error
	DeletePelanggan(ctx context.Context, id uint) error
	ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error
	TopUpSaldo(ctx context.Context, id uint, amount int) error
}

type PurchaseService interface {
	Purchase(ctx context.Context, itemID, pelangganID uint, quantity int) (domain.PurchaseReceipt, error)
}

// ItemCatalog is the read-only item surface the pelanggan endpoints
// expose: the beranda listing and its paginated variant.
type ItemCatalog interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	PaginateItems(ctx context.Context, pageNumber, pageSize int, sort, search string) (domain.ItemPage, error)
}

type PelangganHandler struct {
	svc       PelangganService
	purchases PurchaseService
	items     ItemCatalog
}

func NewPelangganHandler(svc PelangganService, purchases PurchaseService, items ItemCatalog) *PelangganHandler {
	return &PelangganHandler{
		svc:       svc,
		purchases: purchases,
		items:     items,
	}
}

// HandleBuyItem godoc
// @Summary      Purchase an item
// @Description  Settles a purchase: decrements stock and debits saldo atomically.
// @Tags         pelanggan
// @Produce      json
// @Param        request   body      request.BuyItemRequest true "request body"
// @Success      200      {object}   response.BuyItemResponse
// @Failure      400      {object}   response.Err
// @Failure      445      {object}   response.Err
// @Failure      446      {object}   response.Err
// @Failure      447      {object}   response.Err
// @Failure      448      {object}   response.Err
// @Router       /pelanggan/transaksi [put]
func (h *PelangganHandler) HandleBuyItem(ctx *gin.Context) {
	req := request.BuyItemRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	receipt, err := h.purchases.Purchase(ctx.Request.Context(), req.IDBarang, req.IDPelanggan, req.BanyakBarang)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrItemNotListed())
		case errors.Is(err, service.ErrPelangganNotFound):
			response.RenderErr(ctx, response.ErrPelangganNotListed())
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrInsufficientGoods())
		case errors.Is(err, service.ErrInsufficientSaldo):
			response.RenderErr(ctx, response.ErrLessBalance())
		case errors.Is(err, service.ErrInvalidQuantity):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
		default:
			err = fmt.Errorf("v1.HandleBuyItem -> h.purchases.Purchase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.BuyItemResponse{
		IDBarang:     receipt.ItemID,
		IDPelanggan:  receipt.PelangganID,
		BanyakBarang: receipt.Quantity,
		HargaTotal:   receipt.HargaTotal,
		JenisBarang:  req.JenisBarang,
		Message:      "barang berhasil di beli",
	})
}

// HandleTopUpSaldo godoc
// @Summary      Top up a pelanggan's saldo
// @Tags         pelanggan
// @Produce      json
// @Param        id        path      int true "pelanggan ID"
// @Param        request   body      request.TopUpRequest true "request body"
// @Success      200      {object}   response.TopUpResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      449      {object}   response.Err
// @Router       /pelanggan/{id}/top-up [put]
func (h *PelangganHandler) HandleTopUpSaldo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid pelanggan ID")))

		return
	}

	req := request.TopUpRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.TopUpSaldo(ctx.Request.Context(), uint(id), req.Amount); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAmount))
		case errors.Is(err, service.ErrPelangganNotFound):
			response.RenderErr(ctx, response.ErrNotFound("pelanggan", "ID", id))
		default:
			response.RenderErr(ctx, response.ErrSaldoBroken())
		}

		return
	}

	ctx.JSON(http.StatusOK, response.TopUpResponse{
		ID:      uint(id),
		Message: "Saldo berhasil ditambahkan",
	})
}

// HandleGetBeranda godoc
// @Summary      List every item on the marketplace front page
// @Tags         pelanggan
// @Produce      json
// @Success      200      {array}    domain.Item
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/beranda [get]
func (h *PelangganHandler) HandleGetBeranda(ctx *gin.Context) {
	items, err := h.items.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBeranda -> h.items.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetPaginationItems godoc
// @Summary      List items with pagination, sorting and search
// @Tags         pelanggan
// @Produce      json
// @Param        page_number   query   int    false "page number, starts at 1"
// @Param        page_size     query   int    false "page size, 0 returns everything"
// @Param        sort          query   string false "sort, field:asc or field:desc"
// @Param        search        query   string false "search, field:key"
// @Success      200      {object}   domain.ItemPage
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/pagination [get]
func (h *PelangganHandler) HandleGetPaginationItems(ctx *gin.Context) {
	pageNumber, _ := strconv.Atoi(ctx.DefaultQuery("page_number", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "0"))

	page, err := h.items.PaginateItems(ctx.Request.Context(), pageNumber, pageSize, ctx.Query("sort"), ctx.Query("search"))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPaginationItems -> h.items.PaginateItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleListPelanggan godoc
// @Summary      List all pelanggan
// @Tags         pelanggan
// @Produce      json
// @Success      200      {array}    domain.Pelanggan
// @Failure      500      {object}   response.Err
// @Router       /pelanggan [get]
func (h *PelangganHandler) HandleListPelanggan(ctx *gin.Context) {
	pelanggans, err := h.svc.ListPelanggan(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPelanggan -> h.svc.ListPelanggan -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pelanggans)
}

// HandleGetPelanggan godoc
// @Summary      Get a pelanggan by ID
// @Tags         pelanggan
// @Produce      json
// @Param        id   path  int true "pelanggan ID"
// @Success      200      {object}   domain.Pelanggan
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/{id} [get]
func (h *PelangganHandler) HandleGetPelanggan(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid pelanggan ID")))

		return
	}

	pelanggan, err := h.svc.GetPelanggan(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPelangganNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("pelanggan", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPelanggan -> h.svc.GetPelanggan -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pelanggan)
}

// HandleCreatePelanggan godoc
// @Summary      Register a pelanggan
// @Tags         pelanggan
// @Produce      json
// @Param        request   body      request.CreatePelangganRequest true "request body"
// @Success      201      {object}   domain.Pelanggan
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pelanggan [post]
func (h *PelangganHandler) HandleCreatePelanggan(ctx *gin.Context) {
	req := request.CreatePelangganRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	pelanggan, err := h.svc.CreatePelanggan(ctx.Request.Context(), domain.Pelanggan{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Saldo:    req.Saldo,
	})
	if err != nil {
		if errors.Is(err, service.ErrPelangganEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPelangganEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePelanggan -> h.svc.CreatePelanggan -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, pelanggan)
}

// HandleUpdatePelanggan godoc
// @Summary      Update a pelanggan's name and email
// @Tags         pelanggan
// @Produce      json
// @Param        id        path      int true "pelanggan ID"
// @Param        request   body      request.UpdatePelangganRequest true "request body"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/{id} [put]
func (h *PelangganHandler) HandleUpdatePelanggan(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid pelanggan ID")))

		return
	}

	req := request.UpdatePelangganRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.UpdatePelanggan(ctx.Request.Context(), uint(id), req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrPelangganNotFound):
			response.RenderErr(ctx, response.ErrNotFound("pelanggan", "ID", id))
		case errors.Is(err, service.ErrPelangganEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPelangganEmailExists))
		default:
			err = fmt.Errorf("v1.HandleUpdatePelanggan -> h.svc.UpdatePelanggan -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "pelanggan berhasil di update",
	})
}

// HandleDeletePelanggan godoc
// @Summary      Delete a pelanggan
// @Tags         pelanggan
// @Produce      json
// @Param        id   path  int true "pelanggan ID"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/{id} [delete]
func (h *PelangganHandler) HandleDeletePelanggan(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid pelanggan ID")))

		return
	}

	if err = h.svc.DeletePelanggan(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrPelangganNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("pelanggan", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePelanggan -> h.svc.DeletePelanggan -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "pelanggan berhasil di hapus",
	})
}

// HandleChangePassword godoc
// @Summary      Change a pelanggan's password
// @Tags         pelanggan
// @Produce      json
// @Param        id        path      int true "pelanggan ID"
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pelanggan/{id}/change-password [post]
func (h *PelangganHandler) HandleChangePassword(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid pelanggan ID")))

		return
	}

	req := request.ChangePasswordRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.ChangePassword(ctx.Request.Context(), uint(id), req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPelangganNotFound):
			response.RenderErr(ctx, response.ErrNotFound("pelanggan", "ID", id))
		case errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongPassword))
		default:
			err = fmt.Errorf("v1.HandleChangePassword -> h.svc.ChangePassword -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
