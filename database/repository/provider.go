package repository

import (
	"context"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"

	"homefix/models"
)

// TechnicianRepository defines the interface for technician data access.
type TechnicianRepository interface {
	InsertTechnician(ctx context.Context, t models.Technician) error
	GetTechnician(ctx context.Context, id string) (*models.Technician, error)
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
}

type dbTechnician struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	AreasCSV    string `db:"areas_csv"`
	ServicesCSV string `db:"services_csv"`
	OwnerName   string `db:"owner_name"`
	CreatedAt   string `db:"created_at"`
}

func (t dbTechnician) toModel() models.Technician {
	return models.Technician{
		ID:          t.ID,
		Name:        t.Name,
		Phone:       t.Phone,
		AreasCSV:    t.AreasCSV,
		ServicesCSV: t.ServicesCSV,
		OwnerName:   t.OwnerName,
		CreatedAt:   parseTime(t.CreatedAt),
	}
}

// InsertTechnician stores a new technician.
func (s *Store) InsertTechnician(ctx context.Context, t models.Technician) error {
	stmt, err := sqlair.Prepare(`
INSERT INTO technicians (id, name, phone, areas_csv, services_csv, owner_name, created_at)
VALUES ($dbTechnician.*)`, dbTechnician{})
	if err != nil {
		return errors.Annotate(err, "preparing insert technician statement")
	}

	row := dbTechnician{
		ID:          t.ID,
		Name:        t.Name,
		Phone:       t.Phone,
		AreasCSV:    t.AreasCSV,
		ServicesCSV: t.ServicesCSV,
		OwnerName:   t.OwnerName,
		CreatedAt:   formatTime(t.CreatedAt),
	}
	if err := s.db.Query(ctx, stmt, row).Run(); err != nil {
		if isPrimaryKeyConflict(err) {
			return errors.AlreadyExistsf("technician %q", t.ID)
		}
		return errors.Annotatef(err, "inserting technician %q", t.ID)
	}
	return nil
}

// GetTechnician returns the technician with the given id.
func (s *Store) GetTechnician(ctx context.Context, id string) (*models.Technician, error) {
	stmt, err := sqlair.Prepare(`
SELECT &dbTechnician.*
FROM   technicians
WHERE  id = $dbTechnician.id`, dbTechnician{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing get technician statement")
	}

	row := dbTechnician{ID: id}
	err = s.db.Query(ctx, stmt, row).Get(&row)
	if errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.NotFoundf("technician %q", id)
	} else if err != nil {
		return nil, errors.Annotatef(err, "getting technician %q", id)
	}
	t := row.toModel()
	return &t, nil
}

// ListTechnicians returns every technician, newest first.
func (s *Store) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	stmt, err := sqlair.Prepare(`
SELECT &dbTechnician.*
FROM   technicians
ORDER  BY created_at DESC, rowid DESC`, dbTechnician{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing list technicians statement")
	}

	var rows []dbTechnician
	err = s.db.Query(ctx, stmt).GetAll(&rows)
	if err != nil && !errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.Annotate(err, "listing technicians")
	}

	techs := make([]models.Technician, 0, len(rows))
	for _, row := range rows {
		techs = append(techs, row.toModel())
	}
	return techs, nil
}
