package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EmployeeHandler serves the employee directory CRUD.
type EmployeeHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewEmployeeHandler(db *gorm.DB, bcryptCost int) *EmployeeHandler {
	return &EmployeeHandler{DB: db, BcryptCost: bcryptCost}
}

// List returns all employees with minimal fields.
func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.DB.Order("id ASC").Find(&employees).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	items := make([]gin.H, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		items = append(items, gin.H{
			"id":        e.ID,
			"username":  e.Username,
			"fullName":  e.FullName,
			"role":      e.Role,
			"createdAt": e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one employee together with their attendance sessions.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.ReasonInvalidID)
		return
	}

	var emp models.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.ReasonNotFound)
		} else {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		}
		return
	}

	var sessions []models.AttendanceSession
	if err := h.DB.Where("employee_id = ?", emp.ID).
		Order("check_in_at DESC").
		Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        emp.ID,
		"username":  emp.Username,
		"fullName":  emp.FullName,
		"role":      emp.Role,
		"createdAt": emp.CreatedAt,
		"sessions":  sessions,
	})
}

// Create adds a new employee (admin only). Same validation as registration.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.ReasonMissingFields)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" || req.FullName == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, util.ReasonMissingFields)
		return
	}

	role := models.RoleEmployee
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidRole)
			return
		}
	}

	var count int64
	if err := h.DB.Model(&models.Employee{}).
		Where("username = ?", req.Username).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.ReasonUsernameExists)
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	emp := models.Employee{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.DB.Create(&emp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusCreated, toEmployeeResp(&emp))
}

type updateEmployeeReq struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Update changes full name and role only (admin only). There is no secret
// rotation endpoint.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.ReasonInvalidID)
		return
	}

	var req updateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.ReasonMissingFields)
		return
	}

	var emp models.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.ReasonNotFound)
		} else {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		}
		return
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		emp.FullName = name
	}
	if req.Role != "" {
		role := models.Role(req.Role)
		if !role.Valid() {
			util.Error(c, http.StatusBadRequest, util.ReasonInvalidRole)
			return
		}
		emp.Role = role
	}

	if err := h.DB.Save(&emp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResp(&emp))
}

// Delete hard-deletes an employee (admin only). Their sessions are left in
// the ledger; no referential cascade is enforced.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.ReasonInvalidID)
		return
	}

	var emp models.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.ReasonNotFound)
		} else {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		}
		return
	}

	if err := h.DB.Delete(&emp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.Status(http.StatusNoContent)
}
