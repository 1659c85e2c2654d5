package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/request"
	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/service"
)

type PaymentService interface {
	Record(ctx context.Context, accessKey string, amount float64, paymentDate time.Time, notes string) (domain.Payment, error)
	ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	Void(ctx context.Context, id uint) error
	Reinstate(ctx context.Context, id uint) error
	Edit(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) (domain.Payment, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleListPayments godoc
// @Summary      List all payments
// @Description  Admin ledger view, voided entries included
// @Tags         payments
// @Produce      json
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleListPayments(ctx *gin.Context) {
	payments, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPayments -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleListFamilyPayments godoc
// @Summary      List a family's payments
// @Tags         payments
// @Produce      json
// @Param        accessKey  path      string  true  "Family access key"
// @Success      200  {array}   domain.Payment
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/family/{accessKey} [get]
func (h *PaymentHandler) HandleListFamilyPayments(ctx *gin.Context) {
	accessKey := ctx.Param("accessKey")

	payments, err := h.svc.ListByAccessKey(ctx.Request.Context(), accessKey)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "accessKey", accessKey))
			return
		}

		err = fmt.Errorf("v1.HandleListFamilyPayments -> h.svc.ListByAccessKey -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleRecordPayment godoc
// @Summary      Record a payment
// @Description  Logs a payment against the family behind the access key. Negative amounts record corrections.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecordPaymentRequest  true  "Payment details"
// @Success      201  {object}  domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [post]
func (h *PaymentHandler) HandleRecordPayment(ctx *gin.Context) {
	var req request.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.Record(ctx.Request.Context(), req.AccessKey, *req.Amount, req.ParsedDate(), req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "accessKey", req.AccessKey))
			return
		}

		err = fmt.Errorf("v1.HandleRecordPayment -> h.svc.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleVoidPayment godoc
// @Summary      Void a payment
// @Description  Marks the payment cancelled; the row stays on the books for the audit trail
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "Payment ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID}/void [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleVoidPayment(ctx *gin.Context) {
	h.setCancelled(ctx, true)
}

// HandleReinstatePayment godoc
// @Summary      Reinstate a voided payment
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "Payment ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID}/reinstate [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleReinstatePayment(ctx *gin.Context) {
	h.setCancelled(ctx, false)
}

func (h *PaymentHandler) setCancelled(ctx *gin.Context, cancelled bool) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	if cancelled {
		err = h.svc.Void(ctx.Request.Context(), uint(paymentID))
	} else {
		err = h.svc.Reinstate(ctx.Request.Context(), uint(paymentID))
	}
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
			return
		}

		err = fmt.Errorf("v1.setCancelled -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	msg := "payment reinstated"
	if cancelled {
		msg = "payment voided"
	}

	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

// HandleEditPayment godoc
// @Summary      Edit a payment
// @Description  Corrects amount, date and notes in place. The cancelled flag is untouched.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        paymentID  path      int                         true  "Payment ID"
// @Param        request    body      request.EditPaymentRequest  true  "New values"
// @Success      200  {object}  domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID} [put]
// @Security     BearerAuth
func (h *PaymentHandler) HandleEditPayment(ctx *gin.Context) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	var req request.EditPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.Edit(ctx.Request.Context(), uint(paymentID), *req.Amount, req.ParsedDate(), req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
			return
		}

		err = fmt.Errorf("v1.HandleEditPayment -> h.svc.Edit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleDeletePayment godoc
// @Summary      Delete a payment
// @Description  Hard delete for rows that should never have existed; void is the usual correction
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "Payment ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID} [delete]
// @Security     BearerAuth
func (h *PaymentHandler) HandleDeletePayment(ctx *gin.Context) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(paymentID)); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
			return
		}

		err = fmt.Errorf("v1.HandleDeletePayment -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}
