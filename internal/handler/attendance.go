package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/config"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/middleware"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AttendanceHandler serves the session ledger and the hour-summary report.
type AttendanceHandler struct {
	DB     *gorm.DB
	Policy config.AttendanceConfig
}

func NewAttendanceHandler(db *gorm.DB, policy config.AttendanceConfig) *AttendanceHandler {
	return &AttendanceHandler{DB: db, Policy: policy}
}

// timeLayouts accepted for the from/to query parameters.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimeParam(s string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range timeLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// CheckIn opens a new attendance session stamped with the current time.
// Unless single_open_session is enabled, repeated check-ins simply produce
// multiple open sessions.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	emp, ok := middleware.CurrentEmployee(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.ReasonTokenRequired)
		return
	}

	if h.Policy.SingleOpenSession {
		var open int64
		if err := h.DB.Model(&models.AttendanceSession{}).
			Where("employee_id = ? AND check_out_at IS NULL", emp.ID).
			Count(&open).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
			return
		}
		if open > 0 {
			util.Error(c, http.StatusConflict, util.ReasonAlreadyOpen)
			return
		}
	}

	session := models.AttendanceSession{
		EmployeeID: emp.ID,
		CheckInAt:  time.Now(),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusCreated, session)
}

type checkOutReq struct {
	Note string `json:"note"`
}

// CheckOut closes the most recently opened session (latest check-in wins on
// ties) and records the optional note. A session is only ever mutated by this
// one punch-out.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	emp, ok := middleware.CurrentEmployee(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.ReasonTokenRequired)
		return
	}

	// body is optional; ignore malformed or absent payloads
	var req checkOutReq
	_ = c.ShouldBindJSON(&req)

	var session models.AttendanceSession
	if err := h.DB.
		Where("employee_id = ? AND check_out_at IS NULL", emp.ID).
		Order("check_in_at DESC").
		First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.ReasonNoActiveSession)
		} else {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		}
		return
	}

	now := time.Now()
	session.CheckOutAt = &now
	if req.Note != "" {
		session.Note = req.Note
	}

	if err := h.DB.Save(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, session)
}

// List returns attendance sessions ordered by check-in descending. Non-admin
// callers are always scoped to their own records; the employeeId filter is
// honored for admins only. from/to bound the check-in time inclusively.
func (h *AttendanceHandler) List(c *gin.Context) {
	emp, ok := middleware.CurrentEmployee(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.ReasonTokenRequired)
		return
	}

	targetID := emp.ID
	if emp.Role == models.RoleAdmin {
		if idStr := c.Query("employeeId"); idStr != "" {
			id, err := strconv.Atoi(idStr)
			if err != nil || id <= 0 {
				util.Error(c, http.StatusBadRequest, util.ReasonInvalidID)
				return
			}
			targetID = uint(id)
		}
	}

	q := h.DB.Model(&models.AttendanceSession{}).
		Where("employee_id = ?", targetID)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseTimeParam(fromStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidDate)
			return
		}
		q = q.Where("check_in_at >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseTimeParam(toStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidDate)
			return
		}
		q = q.Where("check_in_at <= ?", to)
	}

	var sessions []models.AttendanceSession
	if err := q.Preload("Employee", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "username", "full_name")
	}).Order("check_in_at DESC").Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

type reportGroup struct {
	Employee   models.PublicEmployee `json:"employee"`
	TotalHours float64               `json:"totalHours"`
	Sessions   int                   `json:"sessions"`
}

// Report sums hours of closed sessions per employee over an optional check-in
// window (admin only, enforced by the router). Accumulation is full precision;
// rounding to two decimals happens at output only. Groups come out in scan
// order, which is employee id ascending.
func (h *AttendanceHandler) Report(c *gin.Context) {
	var fromPtr, toPtr *time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseTimeParam(fromStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidDate)
			return
		}
		fromPtr = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseTimeParam(toStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidDate)
			return
		}
		toPtr = &to
	}

	q := h.DB.Model(&models.AttendanceSession{}).
		Where("check_out_at IS NOT NULL")
	if fromPtr != nil {
		q = q.Where("check_in_at >= ?", *fromPtr)
	}
	if toPtr != nil {
		q = q.Where("check_in_at <= ?", *toPtr)
	}

	var sessions []models.AttendanceSession
	if err := q.Preload("Employee", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "username", "full_name")
	}).Order("employee_id ASC, check_in_at ASC").Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	groups := make(map[uint]*reportGroup)
	order := make([]uint, 0)
	totals := make(map[uint]float64)
	for i := range sessions {
		s := &sessions[i]
		g, seen := groups[s.EmployeeID]
		if !seen {
			g = &reportGroup{}
			if s.Employee != nil {
				g.Employee = s.Employee.Public()
			} else {
				g.Employee = models.PublicEmployee{ID: s.EmployeeID}
			}
			groups[s.EmployeeID] = g
			order = append(order, s.EmployeeID)
		}
		totals[s.EmployeeID] += s.Hours()
		g.Sessions++
	}

	report := make([]reportGroup, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.TotalHours = math.Round(totals[id]*100) / 100
		report = append(report, *g)
	}

	var fromOut, toOut interface{}
	if fromPtr != nil {
		fromOut = fromPtr.Format(time.RFC3339)
	}
	if toPtr != nil {
		toOut = toPtr.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{
		"from":   fromOut,
		"to":     toOut,
		"report": report,
	})
}
