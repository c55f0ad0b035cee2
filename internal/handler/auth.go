package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 8
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		JWTIssuer:  issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type employeeResp struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

func toEmployeeResp(e *models.Employee) employeeResp {
	return employeeResp{ID: e.ID, Username: e.Username, FullName: e.FullName, Role: e.Role}
}

// Register creates a new employee account. Open endpoint; role defaults to
// employee when absent.
func (h *AuthHandler) Register(c *gin.Context) {
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

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a signed token plus the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.ReasonMissingFields)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, util.ReasonMissingFields)
		return
	}

	var emp models.Employee
	if err := h.DB.Where("username = ?", req.Username).First(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, util.ReasonInvalidCreds)
		} else {
			util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		}
		return
	}

	if !util.CheckPassword(req.Password, emp.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.ReasonInvalidCreds)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, &emp, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toEmployeeResp(&emp),
	})
}
