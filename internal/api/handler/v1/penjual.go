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

type PenjualService interface {
	GetPenjual(ctx context.Context, id uint) (domain.Penjual, error)
	ListPenjual(ctx context.Context) ([]domain.Penjual, error)
	CreatePenjual(ctx context.Context, penjual domain.Penjual) (domain.Penjual, error)
	UpdatePenjual(ctx context.Context, id uint, name, email string) error
	DeletePenjual(ctx context.Context, id uint) error
	ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error
}

type PenjualItemLister interface {
	ListItemsByEmail(ctx context.Context, email string) ([]domain.Item, error)
}

type PenjualHandler struct {
	svc   PenjualService
	items PenjualItemLister
}

func NewPenjualHandler(svc PenjualService, items PenjualItemLister) *PenjualHandler {
	return &PenjualHandler{
		svc:   svc,
		items: items,
	}
}

// HandleGetPenjualItems godoc
// @Summary      List a penjual's item listings by email
// @Tags         penjual
// @Produce      json
// @Param        email   query   string true "penjual email"
// @Success      200      {array}    domain.Item
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual/get-items [get]
func (h *PenjualHandler) HandleGetPenjualItems(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("email is required")))

		return
	}

	items, err := h.items.ListItemsByEmail(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPenjualItems -> h.items.ListItemsByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleListPenjual godoc
// @Summary      List all penjual
// @Tags         penjual
// @Produce      json
// @Success      200      {array}    domain.Penjual
// @Failure      500      {object}   response.Err
// @Router       /penjual/get-users [get]
func (h *PenjualHandler) HandleListPenjual(ctx *gin.Context) {
	penjuals, err := h.svc.ListPenjual(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPenjual -> h.svc.ListPenjual -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, penjuals)
}

// HandleGetPenjual godoc
// @Summary      Get a penjual by ID
// @Tags         penjual
// @Produce      json
// @Param        id   path  int true "penjual ID"
// @Success      200      {object}   domain.Penjual
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual/{id} [get]
func (h *PenjualHandler) HandleGetPenjual(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid penjual ID")))

		return
	}

	penjual, err := h.svc.GetPenjual(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPenjualNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("penjual", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPenjual -> h.svc.GetPenjual -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, penjual)
}

// HandleCreatePenjual godoc
// @Summary      Register a penjual
// @Tags         penjual
// @Produce      json
// @Param        request   body      request.CreatePenjualRequest true "request body"
// @Success      201      {object}   domain.Penjual
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual [post]
func (h *PenjualHandler) HandleCreatePenjual(ctx *gin.Context) {
	req := request.CreatePenjualRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	penjual, err := h.svc.CreatePenjual(ctx.Request.Context(), domain.Penjual{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrPenjualEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPenjualEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePenjual -> h.svc.CreatePenjual -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, penjual)
}

// HandleUpdatePenjual godoc
// @Summary      Update a penjual's name and email
// @Tags         penjual
// @Produce      json
// @Param        id        path      int true "penjual ID"
// @Param        request   body      request.UpdatePenjualRequest true "request body"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual/{id} [put]
func (h *PenjualHandler) HandleUpdatePenjual(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid penjual ID")))

		return
	}

	req := request.UpdatePenjualRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.UpdatePenjual(ctx.Request.Context(), uint(id), req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrPenjualNotFound):
			response.RenderErr(ctx, response.ErrNotFound("penjual", "ID", id))
		case errors.Is(err, service.ErrPenjualEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPenjualEmailExists))
		default:
			err = fmt.Errorf("v1.HandleUpdatePenjual -> h.svc.UpdatePenjual -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// HandleChangePassword godoc
// @Summary      Change a penjual's password
// @Tags         penjual
// @Produce      json
// @Param        id        path      int true "penjual ID"
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual/{id}/change-password [post]
func (h *PenjualHandler) HandleChangePassword(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid penjual ID")))

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
		case errors.Is(err, service.ErrPenjualNotFound):
			response.RenderErr(ctx, response.ErrNotFound("penjual", "ID", id))
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

// HandleDeletePenjual godoc
// @Summary      Delete a penjual
// @Tags         penjual
// @Produce      json
// @Param        id   path  int true "penjual ID"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /penjual/{id} [delete]
func (h *PenjualHandler) HandleDeletePenjual(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid penjual ID")))

		return
	}

	if err = h.svc.DeletePenjual(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrPenjualNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("penjual", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePenjual -> h.svc.DeletePenjual -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
