package controllers

import (
	"errors"
	"net/http"

	"github.com/suyogshejal2004/waterreminder/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Scheduler *services.ReminderScheduler
}

func NewUserController(sched *services.ReminderScheduler) *UserController {
	return &UserController{Scheduler: sched}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, scheduleChanged, err := services.UpdateUserProfile(email, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if scheduleChanged && uc.Scheduler != nil {
		if err := uc.Scheduler.Reschedule(user); err != nil {
			// Profile saved; surface the scheduling problem without failing the update.
			c.JSON(http.StatusOK, gin.H{
				"message":          "profile updated, reminders not scheduled",
				"reminder_warning": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
