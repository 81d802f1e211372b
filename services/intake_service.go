package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/suyogshejal2004/waterreminder/models"
	"github.com/suyogshejal2004/waterreminder/utils"

	"gorm.io/gorm"
)

// IntakeService owns the water-intake ledger: append, edit, delete, undo,
// and the per-day rollup kept in DailySnapshot. Every mutation rewrites the
// day's snapshot and notifies connected realtime clients.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// AddEntry appends a new intake event stamped with the current time.
func (s *IntakeService) AddEntry(userID uint, amountMl float64) (*models.IntakeEntry, error) {
	if amountMl <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number of ml", ErrValidation)
	}

	entry := &models.IntakeEntry{
		UserID:     userID,
		AmountMl:   amountMl,
		OccurredAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	s.afterMutation(userID, entry.OccurredAt)
	return entry, nil
}

// EditEntry changes the amount of an existing entry, keeping its timestamp.
func (s *IntakeService) EditEntry(userID, entryID uint, newAmountMl float64) (*models.IntakeEntry, error) {
	if newAmountMl <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number of ml", ErrValidation)
	}

	var entry models.IntakeEntry
	err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: intake entry %d", ErrNotFound, entryID)
		}
		return nil, err
	}

	entry.AmountMl = newAmountMl
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}

	s.afterMutation(userID, entry.OccurredAt)
	return &entry, nil
}

// DeleteEntry removes an entry. A missing id is reported as ErrNotFound
// rather than silently succeeding, matching EditEntry.
func (s *IntakeService) DeleteEntry(userID, entryID uint) error {
	var entry models.IntakeEntry
	err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: intake entry %d", ErrNotFound, entryID)
		}
		return err
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}

	s.afterMutation(userID, entry.OccurredAt)
	return nil
}

// UndoLast deletes today's most recent entry. Ties on the timestamp fall to
// the row inserted last. Returns false without error when today is empty.
func (s *IntakeService) UndoLast(userID uint) (bool, *models.IntakeEntry, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var entry models.IntakeEntry
	err := s.db.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return false, nil, err
	}

	s.afterMutation(userID, entry.OccurredAt)
	return true, &entry, nil
}

// TodayEntries lists today's entries, newest first.
func (s *IntakeService) TodayEntries(userID uint) ([]models.IntakeEntry, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var entries []models.IntakeEntry
	err := s.db.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// TodayTotal sums today's intake in the database.
func (s *IntakeService) TodayTotal(userID uint) (float64, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var total float64
	err := s.db.Model(&models.IntakeEntry{}).
		Select("COALESCE(SUM(amount_ml), 0)").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Scan(&total).Error
	return total, err
}

// GoalFor computes the user's current daily goal from their profile.
func (s *IntakeService) GoalFor(userID uint) (int, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.DefaultGoalMl, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return utils.DefaultGoalMl, err
	}
	return utils.DailyGoalMl(user.WeightKg, user.AgeYears, user.Gender, utils.MaleFactor), nil
}

// afterMutation rewrites the snapshot for the mutated entry's day and pushes
// the new total to connected clients. Failures here are logged by the event
// layer, never surfaced to the caller: the ledger write already succeeded.
func (s *IntakeService) afterMutation(userID uint, occurredAt time.Time) {
	start := dayStartLocal(occurredAt)
	end := start.Add(24 * time.Hour)

	var total float64
	if err := s.db.Model(&models.IntakeEntry{}).
		Select("COALESCE(SUM(amount_ml), 0)").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Scan(&total).Error; err != nil {
		return
	}

	goal, _ := s.GoalFor(userID)

	snap := models.DailySnapshot{
		UserID:        userID,
		Date:          start,
		TotalIntakeMl: total,
		GoalMl:        goal,
	}
	s.db.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(snap).
		FirstOrCreate(&snap)

	EmitIntakeUpdate(userID, start.Format("2006-01-02"), total, goal)
}
