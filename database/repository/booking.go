package repository

import (
	"context"
	"database/sql"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"

	"homefix/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	InsertBooking(ctx context.Context, b models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// UpdateBookingAssignment sets status "assigned" and the assignee in a
	// single statement. It fails with NotFound when no booking has the id.
	UpdateBookingAssignment(ctx context.Context, bookingID, technicianID string) error
}

type dbBooking struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Phone      string         `db:"phone"`
	Address    string         `db:"address"`
	Pincode    string         `db:"pincode"`
	ServiceID  int64          `db:"service_id"`
	Status     string         `db:"status"`
	AssignedTo sql.NullString `db:"assigned_to"`
	CreatedAt  string         `db:"created_at"`
}

type dbServiceTitle struct {
	Title sql.NullString `db:"title"`
}

type dbAssignment struct {
	BookingID    string `db:"booking_id"`
	TechnicianID string `db:"technician_id"`
	Status       string `db:"status"`
}

func (b dbBooking) toModel(title dbServiceTitle) models.Booking {
	out := models.Booking{
		ID:           b.ID,
		Name:         b.Name,
		Phone:        b.Phone,
		Address:      b.Address,
		Pincode:      b.Pincode,
		ServiceID:    b.ServiceID,
		Status:       models.BookingStatus(b.Status),
		CreatedAt:    parseTime(b.CreatedAt),
		ServiceTitle: title.Title.String,
	}
	if b.AssignedTo.Valid {
		assignee := b.AssignedTo.String
		out.AssignedTo = &assignee
	}
	return out
}

const selectBookingColumns = `
SELECT b.id          AS &dbBooking.id,
       b.name        AS &dbBooking.name,
       b.phone       AS &dbBooking.phone,
       b.address     AS &dbBooking.address,
       b.pincode     AS &dbBooking.pincode,
       b.service_id  AS &dbBooking.service_id,
       b.status      AS &dbBooking.status,
       b.assigned_to AS &dbBooking.assigned_to,
       b.created_at  AS &dbBooking.created_at,
       s.title       AS &dbServiceTitle.title
FROM   bookings AS b
LEFT   JOIN services AS s ON s.id = b.service_id`

// InsertBooking stores a new booking. An id collision is reported as
// AlreadyExists rather than overwriting.
func (s *Store) InsertBooking(ctx context.Context, b models.Booking) error {
	stmt, err := sqlair.Prepare(`
INSERT INTO bookings (id, name, phone, address, pincode, service_id, status, assigned_to, created_at)
VALUES ($dbBooking.id, $dbBooking.name, $dbBooking.phone, $dbBooking.address, $dbBooking.pincode,
        $dbBooking.service_id, $dbBooking.status, $dbBooking.assigned_to, $dbBooking.created_at)`, dbBooking{})
	if err != nil {
		return errors.Annotate(err, "preparing insert booking statement")
	}

	row := dbBooking{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Address:   b.Address,
		Pincode:   b.Pincode,
		ServiceID: b.ServiceID,
		Status:    string(b.Status),
		CreatedAt: formatTime(b.CreatedAt),
	}
	if b.AssignedTo != nil {
		row.AssignedTo = sql.NullString{String: *b.AssignedTo, Valid: true}
	}

	if err := s.db.Query(ctx, stmt, row).Run(); err != nil {
		if isPrimaryKeyConflict(err) {
			return errors.AlreadyExistsf("booking %q", b.ID)
		}
		return errors.Annotatef(err, "inserting booking %q", b.ID)
	}
	return nil
}

// GetBooking returns one booking with its service title.
func (s *Store) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	stmt, err := sqlair.Prepare(selectBookingColumns+`
WHERE  b.id = $M.id`, dbBooking{}, dbServiceTitle{}, sqlair.M{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing get booking statement")
	}

	var (
		row   dbBooking
		title dbServiceTitle
	)
	err = s.db.Query(ctx, stmt, sqlair.M{"id": id}).Get(&row, &title)
	if errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.NotFoundf("booking %q", id)
	} else if err != nil {
		return nil, errors.Annotatef(err, "getting booking %q", id)
	}
	b := row.toModel(title)
	return &b, nil
}

// ListBookings returns every booking, newest first.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	stmt, err := sqlair.Prepare(selectBookingColumns+`
ORDER  BY b.created_at DESC, b.rowid DESC`, dbBooking{}, dbServiceTitle{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing list bookings statement")
	}

	var (
		rows   []dbBooking
		titles []dbServiceTitle
	)
	err = s.db.Query(ctx, stmt).GetAll(&rows, &titles)
	if err != nil && !errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.Annotate(err, "listing bookings")
	}

	bookings := make([]models.Booking, 0, len(rows))
	for i, row := range rows {
		bookings = append(bookings, row.toModel(titles[i]))
	}
	return bookings, nil
}

// UpdateBookingAssignment implements BookingRepository.
func (s *Store) UpdateBookingAssignment(ctx context.Context, bookingID, technicianID string) error {
	stmt, err := sqlair.Prepare(`
UPDATE bookings
SET    status = $dbAssignment.status,
       assigned_to = $dbAssignment.technician_id
WHERE  id = $dbAssignment.booking_id`, dbAssignment{})
	if err != nil {
		return errors.Annotate(err, "preparing assign booking statement")
	}

	var outcome sqlair.Outcome
	err = s.db.Query(ctx, stmt, dbAssignment{
		BookingID:    bookingID,
		TechnicianID: technicianID,
		Status:       string(models.BookingAssigned),
	}).Get(&outcome)
	if err != nil {
		return errors.Annotatef(err, "assigning booking %q", bookingID)
	}

	if rows, err := outcome.Result().RowsAffected(); err != nil {
		return errors.Annotatef(err, "assigning booking %q", bookingID)
	} else if rows != 1 {
		return errors.NotFoundf("booking %q", bookingID)
	}
	return nil
}
