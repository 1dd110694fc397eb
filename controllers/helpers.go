package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// idParam parses a numeric path parameter; responds 400 and returns false on
// garbage input.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// dateRange reads the optional startDate/endDate query params (YYYY-MM-DD).
// Both must be present for the range to apply.
func dateRange(c *gin.Context) (start, end *time.Time, err error) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		return nil, nil, nil
	}

	s, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	e, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	// inclusive end of day
	e = e.Add(24*time.Hour - time.Nanosecond)
	return &s, &e, nil
}

// respondError maps lookup misses to 404 with the fixed per-entity message
// and everything else to a 500 with the raw error text.
func respondError(c *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
