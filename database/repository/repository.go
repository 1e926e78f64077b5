package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"
	"github.com/mattn/go-sqlite3"

	"homefix/database"
	"homefix/models"
)

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
}

// Store implements every repository over one SQLite handle.
type Store struct {
	db *sqlair.DB
}

// NewStore wraps an open handle. The handle's lifetime stays with the caller.
func NewStore(db *sql.DB) *Store {
	return &Store{db: sqlair.NewDB(db)}
}

type dbService struct {
	ID            int64  `db:"id"`
	Key           string `db:"key"`
	Title         string `db:"title"`
	Description   string `db:"description"`
	StartingPrice string `db:"starting_price"`
}

func (s dbService) toModel() models.Service {
	return models.Service{
		ID:            s.ID,
		Key:           s.Key,
		Title:         s.Title,
		Description:   s.Description,
		StartingPrice: s.StartingPrice,
	}
}

// ListServices returns the catalog in ascending id order.
func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	stmt, err := sqlair.Prepare(`
SELECT &dbService.*
FROM   services
ORDER  BY id`, dbService{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing list services statement")
	}

	var rows []dbService
	err = s.db.Query(ctx, stmt).GetAll(&rows)
	if err != nil && !errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.Annotate(err, "listing services")
	}

	services := make([]models.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, row.toModel())
	}
	return services, nil
}

// GetService returns the catalog entry with the given id.
func (s *Store) GetService(ctx context.Context, id int64) (*models.Service, error) {
	stmt, err := sqlair.Prepare(`
SELECT &dbService.*
FROM   services
WHERE  id = $dbService.id`, dbService{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing get service statement")
	}

	row := dbService{ID: id}
	err = s.db.Query(ctx, stmt, row).Get(&row)
	if errors.Is(err, sqlair.ErrNoRows) {
		return nil, errors.NotFoundf("service %d", id)
	} else if err != nil {
		return nil, errors.Annotatef(err, "getting service %d", id)
	}
	svc := row.toModel()
	return &svc, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(database.TimeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(database.TimeLayout, s)
	if err != nil {
		// Rows written by other tools may carry a plain RFC 3339 stamp.
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC()
}

func isPrimaryKeyConflict(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	// The driver error may have been flattened to text on the way up.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
