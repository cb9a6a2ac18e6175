package models

// ScheduleEntry is one booked shift. StaffName is copied from the staff
// record at booking time and is not updated when the user renames later.
// Entries are append-only; no two entries may share
// (StaffEmail, Date, TimeSlot).
type ScheduleEntry struct {
	Manager         string `json:"manager" validate:"required"`
	Date            string `json:"date" validate:"required"`
	TimeSlot        string `json:"time" validate:"required"`
	StaffEmail      string `json:"staff_email" validate:"required,email"`
	StaffName       string `json:"staff_name"`
	WorkDescription string `json:"work_description"`
}
