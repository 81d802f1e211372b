package services

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/suyogshejal2004/waterreminder/models"

	"gorm.io/gorm"
)

// DefaultReminderInterval is the spacing between reminders inside the
// waking window, overridable via REMINDER_INTERVAL_MINUTES.
const DefaultReminderInterval = 90 * time.Minute

var reminderMessages = []string{
	"Time for a water break! Your body will thank you.",
	"Hey! A quick glass of water will boost your energy.",
	"Just a friendly reminder to stay hydrated. Cheers!",
	"Feeling sluggish? Water can help! Have a sip.",
	"Keep up the great work! It's time for some H2O.",
	"Don't forget to drink water and shine on!",
	"A sip of water is a sip of wellness. Stay hydrated!",
}

// PlanReminders enumerates reminder instants: starting at wake, stepping by
// interval while strictly before sleep, dropping anything at or before now.
// sleep must be after wake or the whole window is rejected.
func PlanReminders(wake, sleep time.Time, interval time.Duration, now time.Time) ([]time.Time, error) {
	if !sleep.After(wake) {
		return nil, fmt.Errorf("%w: sleep time must be after wake time", ErrValidation)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: reminder interval must be positive", ErrValidation)
	}

	var instants []time.Time
	for t := wake; t.Before(sleep); t = t.Add(interval) {
		if t.After(now) {
			instants = append(instants, t)
		}
	}
	return instants, nil
}

// parseClockToday anchors an "HH:MM" string to today's local date.
func parseClockToday(clock string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must be HH:MM, got %q", ErrValidation, clock)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

func reminderInterval() time.Duration {
	if v := os.Getenv("REMINDER_INTERVAL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			return time.Duration(mins) * time.Minute
		}
		log.Printf("ignoring invalid REMINDER_INTERVAL_MINUTES=%q", v)
	}
	return DefaultReminderInterval
}

// ReminderScheduler arms a timer per planned instant and delivers through
// the push service. Timers are tagged by user so a schedule change cancels
// the whole batch before re-arming, never stacking duplicates.
type ReminderScheduler struct {
	mu       sync.Mutex
	timers   map[uint][]*time.Timer
	db       *gorm.DB
	push     *PushService
	interval time.Duration
}

func NewReminderScheduler(db *gorm.DB, push *PushService) *ReminderScheduler {
	return &ReminderScheduler{
		timers:   make(map[uint][]*time.Timer),
		db:       db,
		push:     push,
		interval: reminderInterval(),
	}
}

// Cancel stops every pending reminder for the user.
func (r *ReminderScheduler) Cancel(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.timers[userID] {
		t.Stop()
	}
	delete(r.timers, userID)
}

// Reschedule cancels any pending reminders and, if the user has reminders
// enabled, plans today's remaining window and arms a timer per instant.
func (r *ReminderScheduler) Reschedule(user *models.User) error {
	r.Cancel(user.ID)

	if !user.ReminderEnabled {
		return nil
	}
	if user.WakeTime == "" || user.SleepTime == "" {
		return fmt.Errorf("%w: wake and sleep times must be set before enabling reminders", ErrValidation)
	}

	now := time.Now()
	wake, err := parseClockToday(user.WakeTime, now)
	if err != nil {
		return err
	}
	sleep, err := parseClockToday(user.SleepTime, now)
	if err != nil {
		return err
	}

	instants, err := PlanReminders(wake, sleep, r.interval, now)
	if err != nil {
		log.Printf("reminder scheduling aborted for user %d: %v", user.ID, err)
		return err
	}

	userID := user.ID
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, at := range instants {
		timer := time.AfterFunc(time.Until(at), func() {
			if r.push == nil {
				return
			}
			msg := reminderMessages[rand.Intn(len(reminderMessages))]
			r.push.PushToUser(userID, "Hydration Reminder", msg, map[string]string{
				"type": "water-reminder",
			})
		})
		r.timers[userID] = append(r.timers[userID], timer)
	}

	// Timers are one-shot, so the schedule re-arms itself at the next local
	// midnight. Reminders then recur every day without the user touching
	// their settings, and a settings change between now and then still wins
	// because Reschedule cancels the rollover along with everything else.
	rollover := time.AfterFunc(time.Until(nextRollover(now)), func() {
		r.rearmDaily(userID)
	})
	r.timers[userID] = append(r.timers[userID], rollover)

	log.Printf("scheduled %d reminders for user %d", len(instants), userID)
	return nil
}

// nextRollover is the upcoming local midnight.
func nextRollover(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// rearmDaily reloads the user and replans the new day's window, so settings
// changed by other paths since yesterday are picked up.
func (r *ReminderScheduler) rearmDaily(userID uint) {
	if r.db == nil {
		return
	}
	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		log.Printf("reminder rollover: could not reload user %d: %v", userID, err)
		return
	}
	if err := r.Reschedule(&user); err != nil {
		log.Printf("reminder rollover failed for user %d: %v", userID, err)
	}
}

// RestoreAll re-arms reminders for every enabled user, called once at
// startup since timers do not survive a restart.
func (r *ReminderScheduler) RestoreAll() {
	var users []models.User
	if err := r.db.Where("reminder_enabled = ? AND disabled = ?", true, false).Find(&users).Error; err != nil {
		log.Printf("reminder restore failed: %v", err)
		return
	}
	for i := range users {
		if err := r.Reschedule(&users[i]); err != nil {
			log.Printf("reminder restore skipped user %d: %v", users[i].ID, err)
		}
	}
}
