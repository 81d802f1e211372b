package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/suyogshejal2004/waterreminder/config"
	"github.com/suyogshejal2004/waterreminder/models"
	"github.com/suyogshejal2004/waterreminder/utils"
)

type ProfileInput struct {
	Name            string  `json:"name"`
	WeightKg        float64 `json:"weight_kg"`
	HeightCm        float64 `json:"height_cm"`
	AgeYears        int     `json:"age_years"`
	Gender          string  `json:"gender"`
	WakeTime        string  `json:"wake_time"`  // "HH:MM"
	SleepTime       string  `json:"sleep_time"` // "HH:MM"
	ReminderEnabled *bool   `json:"reminder_enabled"`
	ProfilePicture  string  `json:"profile_picture"` // base64 data URI
}

// GetUserProfile returns the profile plus the goal derived from it, so the
// client never computes the formula itself.
func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	return map[string]interface{}{
		"id":               user.ID,
		"email":            user.Email,
		"name":             user.Name,
		"weight_kg":        user.WeightKg,
		"height_cm":        user.HeightCm,
		"age_years":        user.AgeYears,
		"gender":           user.Gender,
		"wake_time":        user.WakeTime,
		"sleep_time":       user.SleepTime,
		"reminder_enabled": user.ReminderEnabled,
		"profile_picture":  user.ProfilePicture,
		"daily_goal_ml":    utils.DailyGoalMl(user.WeightKg, user.AgeYears, user.Gender, utils.MaleFactor),
	}, nil
}

// UpdateUserProfile applies non-zero fields. The second return reports
// whether the reminder schedule is affected, so the caller can reschedule.
func UpdateUserProfile(email string, input ProfileInput) (*models.User, bool, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, false, fmt.Errorf("%w: user", ErrNotFound)
	}

	if input.WeightKg < 0 || input.AgeYears < 0 || input.HeightCm < 0 {
		return nil, false, fmt.Errorf("%w: weight, height and age must be positive", ErrValidation)
	}
	if input.Gender != "" {
		switch strings.ToLower(input.Gender) {
		case "male", "female", "unspecified":
			user.Gender = strings.ToLower(input.Gender)
		default:
			return nil, false, fmt.Errorf("%w: gender must be male, female or unspecified", ErrValidation)
		}
	}

	scheduleChanged := false
	if input.WakeTime != "" {
		if _, err := time.Parse("15:04", input.WakeTime); err != nil {
			return nil, false, fmt.Errorf("%w: wake_time must be HH:MM", ErrValidation)
		}
		user.WakeTime = input.WakeTime
		scheduleChanged = true
	}
	if input.SleepTime != "" {
		if _, err := time.Parse("15:04", input.SleepTime); err != nil {
			return nil, false, fmt.Errorf("%w: sleep_time must be HH:MM", ErrValidation)
		}
		user.SleepTime = input.SleepTime
		scheduleChanged = true
	}
	if input.ReminderEnabled != nil {
		user.ReminderEnabled = *input.ReminderEnabled
		scheduleChanged = true
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.AgeYears > 0 {
		user.AgeYears = input.AgeYears
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return nil, false, fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, scheduleChanged, nil
}

// SetReminderEnabled flips the reminder flag on the profile.
func SetReminderEnabled(userID uint, enabled bool) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	user.ReminderEnabled = enabled
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
