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

type ActivityService interface {
	List(ctx context.Context, accessKey string) ([]domain.Activity, error)
	ListAll(ctx context.Context) ([]domain.Activity, error)
	Get(ctx context.Context, id uint) (domain.Activity, error)
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	SetAvailability(ctx context.Context, id uint, available bool) error
	Delete(ctx context.Context, id uint) error
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleListActivities godoc
// @Summary      List bookable activities
// @Description  Returns available activities. With an access_key query parameter, the family's signed-up activities are included even when no longer available.
// @Tags         activities
// @Produce      json
// @Param        access_key  query     string  false  "Family access key"
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	accessKey := ctx.Query("access_key")

	activities, err := h.svc.List(ctx.Request.Context(), accessKey)
	if err != nil {
		err = fmt.Errorf("v1.HandleListActivities -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleListAllActivities godoc
// @Summary      List every activity
// @Description  Admin view including unavailable activities
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/all [get]
// @Security     BearerAuth
func (h *ActivityHandler) HandleListAllActivities(ctx *gin.Context) {
	activities, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllActivities -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateActivityRequest  true  "Activity details"
// @Success      201  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities [post]
// @Security     BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Description  Partial update; only submitted fields change
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                            true  "Activity ID"
// @Param        request     body      request.UpdateActivityRequest  true  "Fields to update"
// @Success      200  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{activityID} [put]
// @Security     BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	var req request.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("no fields to update")))
		return
	}

	if err := h.svc.Update(ctx.Request.Context(), uint(activityID), fields); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	activity, err := h.svc.Get(ctx.Request.Context(), uint(activityID))
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleSetActivityAvailability godoc
// @Summary      Override activity availability
// @Description  Admin override of the availability flag. For capacity-limited activities the flag is recomputed on the next signup change.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                                  true  "Activity ID"
// @Param        request     body      request.ActivityAvailabilityRequest  true  "Availability"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{activityID}/availability [put]
// @Security     BearerAuth
func (h *ActivityHandler) HandleSetActivityAvailability(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	var req request.ActivityAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SetAvailability(ctx.Request.Context(), uint(activityID), *req.Available); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleSetActivityAvailability -> h.svc.SetAvailability -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Description  Removes the activity and every signup to it
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{activityID} [delete]
// @Security     BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(activityID)); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}
