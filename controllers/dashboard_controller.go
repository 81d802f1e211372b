package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/suyogshejal2004/waterreminder/services"
	"github.com/suyogshejal2004/waterreminder/utils"

	"github.com/gin-gonic/gin"
)

// GET /water/dashboard
// Today's goal, running total, entries (newest first), progress ratio and
// any advisory warnings: everything the home screen renders in one call.
func (ic *IntakeController) Dashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := ic.Intake.GoalFor(uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	entries, err := ic.Intake.TodayEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var total float64
	amounts := make([]float64, 0, len(entries))
	for _, e := range entries {
		total += e.AmountMl
		amounts = append(amounts, e.AmountMl)
	}

	pct := 0.0
	if goal > 0 {
		pct = total / float64(goal)
		if pct > 1 {
			pct = 1
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            time.Now().Format("2006-01-02"),
		"goal_ml":         goal,
		"total_intake_ml": total,
		"percent":         pct,
		"entries":         entries,
		"warnings":        utils.AssessDailyIntake(total, amounts),
	})
}

// GET /water/history
func (ic *IntakeController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	days, err := ic.Intake.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}
