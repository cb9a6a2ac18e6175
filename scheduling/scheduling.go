// Package scheduling assigns staff to fixed hourly slots on working days
// and keeps any (staff, date, slot) triple from being booked twice.
package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodtruck/apperr"
	"foodtruck/models"
)

// SlotCatalog is the fixed set of bookable hourly slots, 09:00 through
// 17:00 inclusive.
var SlotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

const dateLayout = "2006-01-02"

var (
	ErrInvalidDay    = fmt.Errorf("date is not a working day: %w", apperr.ErrValidation)
	ErrInvalidSlot   = fmt.Errorf("time slot is not in the catalog: %w", apperr.ErrValidation)
	ErrStaffNotFound = fmt.Errorf("staff member does not exist: %w", apperr.ErrNotFound)
	ErrSlotConflict  = fmt.Errorf("slot is already booked: %w", apperr.ErrConflict)
)

type StaffDirectory interface {
	FindByEmail(email string) (models.User, error)
}

type ScheduleBook interface {
	All() []models.ScheduleEntry
	Book(models.ScheduleEntry) error
}

type Service struct {
	staff     StaffDirectory
	schedules ScheduleBook
}

func NewService(staff StaffDirectory, schedules ScheduleBook) *Service {
	return &Service{staff: staff, schedules: schedules}
}

// workingDay reports whether shifts may be booked on the given weekday.
// The truck is closed on Mondays.
func workingDay(day time.Weekday) bool {
	return day != time.Monday
}

func validSlot(slot string) bool {
	for _, s := range SlotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableSlots lists the open slots for a staff member on a date, in
// catalog order. A Monday or an unparsable date yields no slots rather
// than an error.
func (s *Service) AvailableSlots(staffEmail, date string) []string {
	day, err := time.Parse(dateLayout, date)
	if err != nil || !workingDay(day.Weekday()) {
		return nil
	}
	entries := s.schedules.All()
	var open []string
	for _, slot := range SlotCatalog {
		if !slotTaken(entries, staffEmail, date, slot) {
			open = append(open, slot)
		}
	}
	return open
}

func slotTaken(entries []models.ScheduleEntry, staffEmail, date, slot string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.StaffEmail, staffEmail) && e.Date == date && e.TimeSlot == slot {
			return true
		}
	}
	return false
}

// Book validates a booking request and commits it. Checks run in order
// and the first failure wins: working day, slot catalog, staff existence,
// slot availability. The staff display name is snapshotted into the entry
// at booking time.
func (s *Service) Book(manager, date, slot, staffEmail, workDescription string) (models.ScheduleEntry, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil || !workingDay(day.Weekday()) {
		return models.ScheduleEntry{}, ErrInvalidDay
	}
	if !validSlot(slot) {
		return models.ScheduleEntry{}, ErrInvalidSlot
	}
	staff, err := s.staff.FindByEmail(staffEmail)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.ScheduleEntry{}, ErrStaffNotFound
		}
		return models.ScheduleEntry{}, err
	}
	if slotTaken(s.schedules.All(), staffEmail, date, slot) {
		return models.ScheduleEntry{}, ErrSlotConflict
	}
	entry := models.ScheduleEntry{
		Manager:         manager,
		Date:            day.Format(dateLayout),
		TimeSlot:        slot,
		StaffEmail:      staff.Email,
		StaffName:       staff.DisplayName(),
		WorkDescription: workDescription,
	}
	if err := s.schedules.Book(entry); err != nil {
		// The store re-checks under its lock; a racing booking that won
		// surfaces here as the same conflict.
		if errors.Is(err, apperr.ErrConflict) {
			return models.ScheduleEntry{}, ErrSlotConflict
		}
		return models.ScheduleEntry{}, err
	}
	return entry, nil
}
