package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/request"
	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/service"
)

type SignupService interface {
	Upsert(ctx context.Context, activityID uint, accessKey string, children []string) (domain.SignupResult, error)
	ListAll(ctx context.Context) ([]domain.Signup, error)
	ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Signup, error)
	Participants(ctx context.Context) ([]domain.ActivityParticipants, error)
}

type SignupHandler struct {
	svc SignupService
}

func NewSignupHandler(svc SignupService) *SignupHandler {
	return &SignupHandler{
		svc: svc,
	}
}

// HandleListSignups godoc
// @Summary      List all signups
// @Description  Admin view of every signup joined with activity and family details
// @Tags         signups
// @Produce      json
// @Success      200  {array}   domain.Signup
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activity-signups [get]
// @Security     BearerAuth
func (h *SignupHandler) HandleListSignups(ctx *gin.Context) {
	signups, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSignups -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, signups)
}

// HandleListFamilySignups godoc
// @Summary      List a family's signups
// @Tags         signups
// @Produce      json
// @Param        accessKey  path      string  true  "Family access key"
// @Success      200  {array}   domain.Signup
// @Failure      500  {object}  response.Err
// @Router       /activity-signups/family/{accessKey} [get]
func (h *SignupHandler) HandleListFamilySignups(ctx *gin.Context) {
	accessKey := ctx.Param("accessKey")

	signups, err := h.svc.ListByAccessKey(ctx.Request.Context(), accessKey)
	if err != nil {
		err = fmt.Errorf("v1.HandleListFamilySignups -> h.svc.ListByAccessKey -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, signups)
}

// HandleUpsertSignup godoc
// @Summary      Reconcile a signup
// @Description  Replaces the family's participant list for the activity. An empty children list withdraws the family; submitting the same state again is a no-op.
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpsertSignupRequest  true  "Signup details"
// @Success      200  {object}  domain.SignupResult
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activity-signups [post]
func (h *SignupHandler) HandleUpsertSignup(ctx *gin.Context) {
	var req request.UpsertSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Upsert(ctx.Request.Context(), req.ActivityID, req.AccessKey, req.Children)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFamilyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("family", "accessKey", req.AccessKey))
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", req.ActivityID))
		default:
			err = fmt.Errorf("v1.HandleUpsertSignup -> h.svc.Upsert -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleParticipants godoc
// @Summary      Public participant roster
// @Description  Available activities with the flattened, sorted list of participant names
// @Tags         public
// @Produce      json
// @Success      200  {array}   domain.ActivityParticipants
// @Failure      500  {object}  response.Err
// @Router       /public/participants [get]
func (h *SignupHandler) HandleParticipants(ctx *gin.Context) {
	roster, err := h.svc.Participants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleParticipants -> h.svc.Participants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, roster)
}
