package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/models"
	"foodtruck/scheduling"
	"foodtruck/storage"
)

func newService(t *testing.T) (*scheduling.Service, *storage.ScheduleStore) {
	t.Helper()
	dir := t.TempDir()
	users := storage.NewUserStore(dir)
	require.NoError(t, users.Create(models.User{
		Email:     "a@x.com",
		Password:  "digest",
		FirstName: "Asel",
		LastName:  "Nur",
		Phone:     "555-0101",
		Role:      models.RoleStaff,
	}))
	schedules := storage.NewScheduleStore(dir)
	return scheduling.NewService(users, schedules), schedules
}

func TestAvailableSlotsOnMondayIsEmpty(t *testing.T) {
	svc, _ := newService(t)
	// 2024-06-10 is a Monday
	assert.Empty(t, svc.AvailableSlots("a@x.com", "2024-06-10"))

	// even with bookings elsewhere that week
	_, err := svc.Book("Mgr", "2024-06-11", "09:00", "a@x.com", "prep")
	require.NoError(t, err)
	assert.Empty(t, svc.AvailableSlots("a@x.com", "2024-06-10"))
}

func TestAvailableSlotsBadDateIsEmpty(t *testing.T) {
	svc, _ := newService(t)
	assert.Empty(t, svc.AvailableSlots("a@x.com", "June 11th"))
	assert.Empty(t, svc.AvailableSlots("a@x.com", ""))
}

func TestAvailableSlotsOpenDayListsFullCatalog(t *testing.T) {
	svc, _ := newService(t)
	assert.Equal(t, scheduling.SlotCatalog, svc.AvailableSlots("a@x.com", "2024-06-11"))
}

func TestBookThenRebookConflicts(t *testing.T) {
	svc, _ := newService(t)

	entry, err := svc.Book("Mgr", "2024-06-11", "09:00", "a@x.com", "prep station")
	require.NoError(t, err)
	assert.Equal(t, "Asel Nur", entry.StaffName)
	assert.Equal(t, "a@x.com", entry.StaffEmail)

	// booked slot disappears from availability
	slots := svc.AvailableSlots("a@x.com", "2024-06-11")
	assert.Len(t, slots, 8)
	assert.NotContains(t, slots, "09:00")

	// identical repeat fails
	_, err = svc.Book("Mgr", "2024-06-11", "09:00", "a@x.com", "prep station")
	assert.ErrorIs(t, err, scheduling.ErrSlotConflict)

	// a different slot on the same day still works
	_, err = svc.Book("Mgr", "2024-06-11", "10:00", "a@x.com", "grill")
	assert.NoError(t, err)
}

func TestBookValidationOrder(t *testing.T) {
	svc, _ := newService(t)

	// Monday wins over everything else
	_, err := svc.Book("Mgr", "2024-06-10", "bogus", "nobody@x.com", "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidDay)

	_, err = svc.Book("Mgr", "not-a-date", "09:00", "a@x.com", "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidDay)

	// slot checked before staff existence
	_, err = svc.Book("Mgr", "2024-06-11", "08:00", "nobody@x.com", "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidSlot)

	_, err = svc.Book("Mgr", "2024-06-11", "09:00", "nobody@x.com", "")
	assert.ErrorIs(t, err, scheduling.ErrStaffNotFound)
}

func TestBookingSnapshotsStaffName(t *testing.T) {
	dir := t.TempDir()
	users := storage.NewUserStore(dir)
	require.NoError(t, users.Create(models.User{
		Email:     "b@x.com",
		Password:  "digest",
		FirstName: "Dana",
		LastName:  "Kim",
		Phone:     "555-0102",
		Role:      models.RoleStaff,
	}))
	schedules := storage.NewScheduleStore(dir)
	svc := scheduling.NewService(users, schedules)

	entry, err := svc.Book("Mgr", "2024-06-12", "11:00", "b@x.com", "window")
	require.NoError(t, err)
	require.Equal(t, "Dana Kim", entry.StaffName)

	// renaming the user later must not rewrite the committed entry
	u, err := users.FindByEmail("b@x.com")
	require.NoError(t, err)
	u.LastName = "Lee"
	require.NoError(t, users.Update(u))

	all := schedules.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Dana Kim", all[0].StaffName)
}
