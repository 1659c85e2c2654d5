package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/service"
)

type ExportService interface {
	Families(ctx context.Context) ([]service.FamilyRow, error)
	Activities(ctx context.Context) ([]domain.Activity, error)
}

type ExportHandler struct {
	svc ExportService
}

func NewExportHandler(svc ExportService) *ExportHandler {
	return &ExportHandler{
		svc: svc,
	}
}

// HandleExportFamilies godoc
// @Summary      Export registrations
// @Description  One flat row per person, ready for CSV assembly
// @Tags         export
// @Produce      json
// @Success      200  {array}   service.FamilyRow
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /export/families [get]
// @Security     BearerAuth
func (h *ExportHandler) HandleExportFamilies(ctx *gin.Context) {
	rows, err := h.svc.Families(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleExportFamilies -> h.svc.Families -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleExportActivities godoc
// @Summary      Export the activity catalogue
// @Tags         export
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /export/activities [get]
// @Security     BearerAuth
func (h *ExportHandler) HandleExportActivities(ctx *gin.Context) {
	activities, err := h.svc.Activities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleExportActivities -> h.svc.Activities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}
