package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/service"
)

type BackupService interface {
	Create(ctx context.Context) (domain.BackupFile, error)
	List(ctx context.Context) ([]domain.BackupFile, error)
	Path(name string) (string, error)
	Delete(name string) error
}

type BackupHandler struct {
	svc BackupService
}

func NewBackupHandler(svc BackupService) *BackupHandler {
	return &BackupHandler{
		svc: svc,
	}
}

// HandleListBackups godoc
// @Summary      List database backups
// @Tags         backups
// @Produce      json
// @Success      200  {array}   domain.BackupFile
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /backups [get]
// @Security     BearerAuth
func (h *BackupHandler) HandleListBackups(ctx *gin.Context) {
	backups, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBackups -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, backups)
}

// HandleCreateBackup godoc
// @Summary      Create a database backup
// @Tags         backups
// @Produce      json
// @Success      201  {object}  domain.BackupFile
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /backups [post]
// @Security     BearerAuth
func (h *BackupHandler) HandleCreateBackup(ctx *gin.Context) {
	backup, err := h.svc.Create(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateBackup -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, backup)
}

// HandleDownloadBackup godoc
// @Summary      Download a backup file
// @Tags         backups
// @Produce      application/octet-stream
// @Param        fileName  path      string  true  "Backup file name"
// @Success      200
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /backups/{fileName} [get]
// @Security     BearerAuth
func (h *BackupHandler) HandleDownloadBackup(ctx *gin.Context) {
	fileName := ctx.Param("fileName")

	path, err := h.svc.Path(fileName)
	if err != nil {
		if errors.Is(err, service.ErrBackupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("backup", "fileName", fileName))
			return
		}

		err = fmt.Errorf("v1.HandleDownloadBackup -> h.svc.Path -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}

// HandleDeleteBackup godoc
// @Summary      Delete a backup file
// @Tags         backups
// @Produce      json
// @Param        fileName  path      string  true  "Backup file name"
// @Success      200
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /backups/{fileName} [delete]
// @Security     BearerAuth
func (h *BackupHandler) HandleDeleteBackup(ctx *gin.Context) {
	fileName := ctx.Param("fileName")

	if err := h.svc.Delete(fileName); err != nil {
		if errors.Is(err, service.ErrBackupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("backup", "fileName", fileName))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteBackup -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "backup deleted"})
}
