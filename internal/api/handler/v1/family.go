package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/request"
	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/service"
)

type FamilyService interface {
	Register(ctx context.Context, family domain.Family) (domain.Family, bool, error)
	GetByAccessKey(ctx context.Context, accessKey string) (domain.Family, error)
	GetByBookingRef(ctx context.Context, bookingRef string) (domain.Family, error)
	List(ctx context.Context) ([]domain.Family, error)
	CheckBookingRef(ctx context.Context, bookingRef string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type FamilyHandler struct {
	svc FamilyService
}

func NewFamilyHandler(svc FamilyService) *FamilyHandler {
	return &FamilyHandler{
		svc: svc,
	}
}

// HandleListFamilies godoc
// @Summary      List all families
// @Description  Retrieves every registered family with members and balances
// @Tags         families
// @Produce      json
// @Success      200  {array}   domain.Family
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families [get]
// @Security     BearerAuth
func (h *FamilyHandler) HandleListFamilies(ctx *gin.Context) {
	families, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFamilies -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, families)
}

// HandleGetFamilyByAccessKey godoc
// @Summary      Get a family by access key
// @Description  Self-service lookup used by the family dashboard
// @Tags         families
// @Produce      json
// @Param        accessKey  path      string  true  "Access key"
// @Success      200  {object}  domain.Family
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/access/{accessKey} [get]
func (h *FamilyHandler) HandleGetFamilyByAccessKey(ctx *gin.Context) {
	accessKey := ctx.Param("accessKey")

	family, err := h.svc.GetByAccessKey(ctx.Request.Context(), accessKey)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "accessKey", accessKey))
			return
		}

		err = fmt.Errorf("v1.HandleGetFamilyByAccessKey -> h.svc.GetByAccessKey -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, family)
}

// HandleGetFamilyByBookingRef godoc
// @Summary      Get a family by booking reference
// @Tags         families
// @Produce      json
// @Param        bookingRef  path      string  true  "Booking reference"
// @Success      200  {object}  domain.Family
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/booking/{bookingRef} [get]
func (h *FamilyHandler) HandleGetFamilyByBookingRef(ctx *gin.Context) {
	bookingRef := ctx.Param("bookingRef")

	family, err := h.svc.GetByBookingRef(ctx.Request.Context(), bookingRef)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "bookingRef", bookingRef))
			return
		}

		err = fmt.Errorf("v1.HandleGetFamilyByBookingRef -> h.svc.GetByBookingRef -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, family)
}

// HandleCheckBookingRef godoc
// @Summary      Check whether a booking reference is registered
// @Tags         families
// @Produce      json
// @Param        bookingRef  path      string  true  "Booking reference"
// @Success      200
// @Failure      500  {object}  response.Err
// @Router       /families/check/{bookingRef} [get]
func (h *FamilyHandler) HandleCheckBookingRef(ctx *gin.Context) {
	bookingRef := ctx.Param("bookingRef")

	exists, err := h.svc.CheckBookingRef(ctx.Request.Context(), bookingRef)
	if err != nil {
		err = fmt.Errorf("v1.HandleCheckBookingRef -> h.svc.CheckBookingRef -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"exists": exists})
}

// HandleRegisterFamily godoc
// @Summary      Register a family
// @Description  Creates a registration, or fully replaces the existing one when the booking reference is already registered. The access key is only generated on first registration.
// @Tags         families
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterFamilyRequest  true  "Registration details"
// @Success      200  {object}  domain.Family
// @Success      201  {object}  domain.Family
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families [post]
func (h *FamilyHandler) HandleRegisterFamily(ctx *gin.Context) {
	var req request.RegisterFamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	family, created, err := h.svc.Register(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleRegisterFamily -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	ctx.JSON(status, family)
}

// HandleDeleteFamily godoc
// @Summary      Delete a family
// @Description  Removes the family along with its members, signups and payments
// @Tags         families
// @Produce      json
// @Param        familyID  path      int  true  "Family ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID} [delete]
// @Security     BearerAuth
func (h *FamilyHandler) HandleDeleteFamily(ctx *gin.Context) {
	familyID, err := strconv.ParseUint(ctx.Param("familyID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid family ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(familyID)); err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteFamily -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "family deleted"})
}
