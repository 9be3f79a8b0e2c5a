package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/logger"
	"fincontrol/internal/services"
)

// maxBackupSize bounds an uploaded backup document.
const maxBackupSize = 32 << 20

// BackupHandler serves full-state export and import.
type BackupHandler struct {
	backupService services.BackupServicer
	now           func() time.Time
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService, now: time.Now}
}

// ExportBackup downloads every transaction and goal as one JSON document
// @Summary     Download backup
// @Tags        backup
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} models.Backup
// @Router      /backup [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	backup, err := h.backupService.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("backup_financeiro_%s.json", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ImportBackup restores transactions and goals from a backup document
// @Summary     Restore backup
// @Description Accepts a multipart "file" field or the raw JSON body. Each collection present in the document replaces the stored one.
// @Tags        backup
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Security    ApiKeyAuth
// @Param       file formData file false "Backup file"
// @Success     200 {object} services.ImportResult
// @Failure     400 {object} ErrorResponse "Invalid backup"
// @Router      /backup [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	body, closeBody, err := backupBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer closeBody()

	result, err := h.backupService.Import(io.LimitReader(body, maxBackupSize))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func backupBody(c *gin.Context) (io.Reader, func(), error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.Request.Body, func() {}, nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required")
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidBackup, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Get().Warnw("failed to close uploaded backup", "error", err)
		}
	}, nil
}
