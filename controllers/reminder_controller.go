package controllers

import (
	"net/http"

	"github.com/suyogshejal2004/waterreminder/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Scheduler *services.ReminderScheduler
	Push      *services.PushService
}

func NewReminderController(sched *services.ReminderScheduler, push *services.PushService) *ReminderController {
	return &ReminderController{Scheduler: sched, Push: push}
}

type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// POST /user/reminders/toggle
// Flips the reminder flag, mirrors it onto the user's push devices, and
// reschedules (or cancels) the reminder timers.
func (rc *ReminderController) Toggle(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := services.SetReminderEnabled(uid, *req.Enabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if rc.Push != nil {
		if err := rc.Push.SetEnabled(uid, *req.Enabled); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := rc.Scheduler.Reschedule(user); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":          "reminders updated, scheduling skipped",
			"enabled":          *req.Enabled,
			"reminder_warning": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "reminders updated",
		"enabled": *req.Enabled,
	})
}
