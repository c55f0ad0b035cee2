package handler

import (
	"net/http"
	"strconv"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	DB *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{DB: db}
}

// List returns recent audit entries, newest first, paginated.
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if size <= 0 || size > 200 {
		size = 50
	}

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	var entries []models.AuditLog
	if err := h.DB.Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&entries).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": entries,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
