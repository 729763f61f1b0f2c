package controllers

import (
	"errors"
	"net/http"

	"github.com/art12345678655/wellness-mini-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (h *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Svc.CreateUser(c.Request.Context(), req.Email, req.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserController) GetUser(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}

	user, err := h.Svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserController) UpdateTargets(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}

	// absent fields clear the target rather than defaulting to 0
	var req struct {
		CalorieTarget  *float64 `json:"calorie_target"`
		ProteinTargetG *float64 `json:"protein_target_g"`
		CarbsTargetG   *float64 `json:"carbs_target_g"`
		FatTargetG     *float64 `json:"fat_target_g"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Svc.UpdateTargets(c.Request.Context(), userID,
		req.CalorieTarget, req.ProteinTargetG, req.CarbsTargetG, req.FatTargetG)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
