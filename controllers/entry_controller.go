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

type EntryController struct {
	Svc *services.EntryService
}

func NewEntryController(svc *services.EntryService) *EntryController {
	return &EntryController{Svc: svc}
}

func pathUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func (h *EntryController) LogEntry(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}

	var req services.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LoggedAt.IsZero() {
		req.LoggedAt = time.Now().UTC()
	}

	entry, err := h.Svc.AddEntry(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *EntryController) UpdateEntry(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}
	entryID, ok := pathUint(c, "entryID")
	if !ok {
		return
	}

	var req services.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.UpdateEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EntryController) DeleteEntry(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}
	entryID, ok := pathUint(c, "entryID")
	if !ok {
		return
	}

	if err := h.Svc.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EntryController) ListEntries(c *gin.Context) {
	userID, ok := pathUint(c, "userID")
	if !ok {
		return
	}

	day := services.DayUTC(time.Now())
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		day = services.DayUTC(d)
	}

	entries, err := h.Svc.ListEntriesByDateRange(c.Request.Context(), userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
