package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homefix/database"
	"homefix/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestListServicesReturnsSeedInIDOrder(t *testing.T) {
	store := newTestStore(t)

	services, err := store.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, len(database.DefaultServices))

	for i, svc := range services {
		assert.Equal(t, int64(i+1), svc.ID)
		assert.Equal(t, database.DefaultServices[i].Key, svc.Key)
		assert.Equal(t, database.DefaultServices[i].StartingPrice, svc.StartingPrice)
	}
}

func TestGetService(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svc, err := store.GetService(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ac_clean", svc.Key)

	_, err = store.GetService(ctx, 999)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestInsertAndListBookingsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"HF-a", "HF-b", "HF-c"} {
		err := store.InsertBooking(ctx, models.Booking{
			ID:        id,
			Name:      "Asha",
			Phone:     "9876543210",
			Address:   "12 MG Road",
			Pincode:   "110001",
			ServiceID: 2,
			Status:    models.BookingReceived,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "HF-c", bookings[0].ID)
	assert.Equal(t, "HF-a", bookings[2].ID)
	assert.Equal(t, "Washing Machine Cleaning", bookings[0].ServiceTitle)
	assert.Nil(t, bookings[0].AssignedTo)
	assert.Equal(t, base.Add(2*time.Minute), bookings[0].CreatedAt)
}

func TestListBookingsEmpty(t *testing.T) {
	store := newTestStore(t)

	bookings, err := store.ListBookings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestListBookingsUnknownServiceHasEmptyTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBooking(ctx, models.Booking{
		ID: "HF-x", Name: "N", Phone: "1", Address: "A", Pincode: "1",
		ServiceID: 42, Status: models.BookingReceived, CreatedAt: time.Now(),
	}))

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "", bookings[0].ServiceTitle)
}

func TestInsertBookingDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	b := models.Booking{ID: "HF-dup", Name: "N", Status: models.BookingReceived, CreatedAt: time.Now()}

	require.NoError(t, store.InsertBooking(ctx, b))
	err := store.InsertBooking(ctx, b)
	assert.True(t, errors.Is(err, errors.AlreadyExists), "got %v", err)
}

func TestUpdateBookingAssignment(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertBooking(ctx, models.Booking{
		ID: "HF-1", Name: "N", Phone: "1", Address: "A", Pincode: "1",
		ServiceID: 1, Status: models.BookingReceived, CreatedAt: time.Now(),
	}))

	require.NoError(t, store.UpdateBookingAssignment(ctx, "HF-1", "T-1"))

	b, err := store.GetBooking(ctx, "HF-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingAssigned, b.Status)
	require.NotNil(t, b.AssignedTo)
	assert.Equal(t, "T-1", *b.AssignedTo)
}

func TestUpdateBookingAssignmentUnknownBooking(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.UpdateBookingAssignment(ctx, "HF-missing", "T-1")
	assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestTechnicians(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.InsertTechnician(ctx, models.Technician{
		ID: "T-old", Name: "Ravi", Phone: "9800000001", AreasCSV: "110001,110002",
		ServicesCSV: "ac_clean", OwnerName: "Ravi", CreatedAt: base,
	}))
	require.NoError(t, store.InsertTechnician(ctx, models.Technician{
		ID: "T-new", Name: "Meena", Phone: "9800000002", CreatedAt: base.Add(time.Hour),
	}))

	techs, err := store.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, techs, 2)
	assert.Equal(t, "T-new", techs[0].ID)
	assert.Equal(t, "110001,110002", techs[1].AreasCSV)

	tech, err := store.GetTechnician(ctx, "T-old")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", tech.Name)

	_, err = store.GetTechnician(ctx, "T-none")
	assert.True(t, errors.Is(err, errors.NotFound))
}
