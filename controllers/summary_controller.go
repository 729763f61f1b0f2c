package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/art12345678655/wellness-mini-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SummaryController struct {
	Svc       *services.SummaryService
	Backfills *services.BackfillService
}

func NewSummaryController(svc *services.SummaryService, backfills *services.BackfillService) *SummaryController {
	return &SummaryController{Svc: svc, Backfills: backfills}
}

// GetRecentSummaries serves the dashboard projection: recent days with
// percent-of-target per metric. user_id=0 (or absent) means all users.
func (h *SummaryController) GetRecentSummaries(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.DefaultQuery("user_id", "0"), 10, 32)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := h.Svc.RecentSummaries(c.Request.Context(), uint(userID), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": rows})
}

func (h *SummaryController) GetDailySummary(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}

	dateStr := c.Param("date")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	sum, err := h.Svc.GetSummary(c.Request.Context(), userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no summary for that day"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// RunBackfill is the operator trigger: re-materialize history for one user
// or everyone. Safe to re-issue; every recompute is idempotent.
func (h *SummaryController) RunBackfill(c *gin.Context) {
	var req struct {
		UserID   uint `json:"user_id"` // 0 = all users
		DaysBack int  `json:"days_back"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DaysBack < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days_back must be >= 0"})
		return
	}

	report, err := h.Backfills.Backfill(c.Request.Context(), req.UserID, req.DaysBack)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
