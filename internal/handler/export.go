package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler writes the full session ledger as a CSV or XLSX download
// (admin only).
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeader = []string{"Employee ID", "Username", "Full Name", "Check In", "Check Out", "Hours", "Note"}

func (h *ExportHandler) fetchSessions() ([]models.AttendanceSession, error) {
	var sessions []models.AttendanceSession
	err := h.DB.Model(&models.AttendanceSession{}).
		Preload("Employee", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "full_name")
		}).
		Order("employee_id ASC, check_in_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func exportRow(s *models.AttendanceSession) []string {
	username, fullName := "", ""
	if s.Employee != nil {
		username = s.Employee.Username
		fullName = s.Employee.FullName
	}
	checkOut, hours := "", ""
	if s.CheckOutAt != nil {
		checkOut = s.CheckOutAt.Format(time.RFC3339)
		hours = strconv.FormatFloat(s.Hours(), 'f', 2, 64)
	}
	return []string{
		strconv.FormatUint(uint64(s.EmployeeID), 10),
		username,
		fullName,
		s.CheckInAt.Format(time.RFC3339),
		checkOut,
		hours,
		s.Note,
	}
}

// ExportCSV streams the ledger as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sessions, err := h.fetchSessions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"attendance_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write(exportHeader)
	for i := range sessions {
		_ = writer.Write(exportRow(&sessions[i]))
	}
}

// ExportXLSX writes the ledger as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	sessions, err := h.fetchSessions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for rowIdx := range sessions {
		row := exportRow(&sessions[rowIdx])
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"attendance_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		// headers already sent; nothing more to do
		return
	}
}
