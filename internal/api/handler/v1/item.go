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

type ItemService interface {
	GetItem(ctx context.Context, id uint) (domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id uint) error
	ReduceStock(ctx context.Context, id uint, quantity int) error
	AddStock(ctx context.Context, id uint, quantity int) error
}

// PenjualChecker guards item creation: the email on the listing must
// belong to a registered penjual.
type PenjualChecker interface {
	GetPenjualByEmail(ctx context.Context, email string) (domain.Penjual, error)
}

type ItemHandler struct {
	svc      ItemService
	penjuals PenjualChecker
}

func NewItemHandler(svc ItemService, penjuals PenjualChecker) *ItemHandler {
	return &ItemHandler{
		svc:      svc,
		penjuals: penjuals,
	}
}

// HandleReduceStok godoc
// @Summary      Reduce an item's stock
// @Tags         items
// @Produce      json
// @Param        request   body      request.StockUpdateRequest true "request body"
// @Success      200      {object}   response.ReduceStokResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      452      {object}   response.Err
// @Router       /item/reduceStok [put]
func (h *ItemHandler) HandleReduceStok(ctx *gin.Context) {
	req := request.StockUpdateRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ReduceStock(ctx.Request.Context(), req.ID, req.NewStok); err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", req.ID))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrOutOfStock())
		case errors.Is(err, service.ErrInvalidQuantity):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
		default:
			err = fmt.Errorf("v1.HandleReduceStok -> h.svc.ReduceStock -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.ReduceStokResponse{
		ID:         req.ID,
		ReduceStok: req.NewStok,
		Message:    "Stok berhasil diperbarui",
	})
}

// HandleAddedStok godoc
// @Summary      Add stock to an item
// @Tags         items
// @Produce      json
// @Param        request   body      request.StockUpdateRequest true "request body"
// @Success      200      {object}   response.AddedStokResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      453      {object}   response.Err
// @Router       /item/addedStok [put]
func (h *ItemHandler) HandleAddedStok(ctx *gin.Context) {
	req := request.StockUpdateRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.AddStock(ctx.Request.Context(), req.ID, req.NewStok); err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", req.ID))
		case errors.Is(err, service.ErrInvalidQuantity):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
		default:
			response.RenderErr(ctx, response.ErrNewStock())
		}

		return
	}

	ctx.JSON(http.StatusOK, response.AddedStokResponse{
		Message: "Stok berhasil ditambahkan",
	})
}

// HandleCreateItem godoc
// @Summary      Create an item listing
// @Tags         items
// @Produce      json
// @Param        request   body      request.CreateItemRequest true "request body"
// @Success      200      {object}   domain.Item
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /item/uploud-item [post]
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	req := request.CreateItemRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if _, err := h.penjuals.GetPenjualByEmail(ctx.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrPenjualNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("email is not registered as a penjual account")))

			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.penjuals.GetPenjualByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), domain.Item{
		NamaBarang:    req.NamaBarang,
		JenisBarang:   req.JenisBarang,
		StokBarang:    req.StokBarang,
		HargaBarang:   req.HargaBarang,
		Email:         req.Email,
		LokasiPenjual: req.LokasiPenjual,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleUpdateItem godoc
// @Summary      Update an item listing
// @Tags         items
// @Produce      json
// @Param        id        path      int true "item ID"
// @Param        request   body      request.UpdateItemRequest true "request body"
// @Success      200      {object}   domain.Item
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /item/{id} [put]
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid item ID")))

		return
	}

	req := request.UpdateItemRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.UpdateItem(ctx.Request.Context(), domain.Item{
		ID:            uint(id),
		NamaBarang:    req.NamaBarang,
		JenisBarang:   req.JenisBarang,
		StokBarang:    req.StokBarang,
		HargaBarang:   req.HargaBarang,
		Email:         req.Email,
		LokasiPenjual: req.LokasiPenjual,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleDeleteItem godoc
// @Summary      Delete an item listing
// @Tags         items
// @Produce      json
// @Param        id   path  int true "item ID"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /item/{id} [delete]
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid item ID")))

		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Item berhasil di hapus",
	})
}
