package storage

import (
	"path/filepath"
	"strings"

	"foodtruck/apperr"
	"foodtruck/models"
)

var scheduleHeader = []string{"manager", "date", "time", "staff_email", "staff_name", "work_description"}

type ScheduleStore struct {
	table *Table[models.ScheduleEntry]
}

func NewScheduleStore(dir string) *ScheduleStore {
	return &ScheduleStore{table: NewTable(filepath.Join(dir, "schedules.csv"), scheduleHeader, encodeSchedule, decodeSchedule)}
}

func encodeSchedule(e models.ScheduleEntry) []string {
	return []string{e.Manager, e.Date, e.TimeSlot, e.StaffEmail, e.StaffName, e.WorkDescription}
}

func decodeSchedule(row Row) models.ScheduleEntry {
	return models.ScheduleEntry{
		Manager:         row["manager"],
		Date:            row["date"],
		TimeSlot:        row["time"],
		StaffEmail:      row["staff_email"],
		StaffName:       row["staff_name"],
		WorkDescription: row["work_description"],
	}
}

func (s *ScheduleStore) All() []models.ScheduleEntry {
	return s.table.Load()
}

func (s *ScheduleStore) ForStaff(email string) []models.ScheduleEntry {
	var entries []models.ScheduleEntry
	for _, e := range s.table.Load() {
		if strings.EqualFold(e.StaffEmail, email) {
			entries = append(entries, e)
		}
	}
	return entries
}

// Book appends the entry unless the (staff, date, slot) triple is taken.
// The conflict re-check and the append run under one table lock, so two
// racing bookings for the same slot cannot both commit.
func (s *ScheduleStore) Book(e models.ScheduleEntry) error {
	return s.table.AppendIf(e, func(existing []models.ScheduleEntry) error {
		for _, have := range existing {
			if strings.EqualFold(have.StaffEmail, e.StaffEmail) && have.Date == e.Date && have.TimeSlot == e.TimeSlot {
				return apperr.Conflictf("%s is already booked on %s at %s", e.StaffEmail, e.Date, e.TimeSlot)
			}
		}
		return nil
	})
}
