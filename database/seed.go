package database

import (
	"context"
	"database/sql"

	"github.com/juju/errors"

	"homefix/models"
)

// DefaultServices is the catalog written on first start.
var DefaultServices = []models.Service{
	{Key: "ac_clean", Title: "AC Cleaning & Servicing", Description: "Filter wash, coil clean, water drain & basic check", StartingPrice: "₹499"},
	{Key: "wm_clean", Title: "Washing Machine Cleaning", Description: "Drum sanitization & pipe check", StartingPrice: "₹399"},
	{Key: "fridge_clean", Title: "Fridge Cleaning", Description: "Coil clean, gasket check, cooling basic check", StartingPrice: "₹349"},
	{Key: "chimney_clean", Title: "Chimney Deep Clean", Description: "Degrease filters, motor check", StartingPrice: "₹699"},
	{Key: "fan_clean", Title: "Fan & Exhaust Cleaning", Description: "Blade clean, motor dust removal", StartingPrice: "₹149"},
	{Key: "geyser", Title: "Geyser Repair & Service", Description: "Heating & thermostat checks", StartingPrice: "₹149"},
}

// seedServices inserts DefaultServices only when the table is empty. The
// count and inserts share one transaction so concurrent starts seed once.
func seedServices(ctx context.Context, db *sql.DB) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Annotate(err, "starting seed transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return errors.Annotate(err, "counting services")
	}
	if count > 0 {
		return errors.Annotate(tx.Commit(), "committing seed transaction")
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO services (key, title, description, starting_price) VALUES (?, ?, ?, ?)")
	if err != nil {
		return errors.Annotate(err, "preparing seed insert")
	}
	defer stmt.Close()

	for _, s := range DefaultServices {
		if _, err = stmt.ExecContext(ctx, s.Key, s.Title, s.Description, s.StartingPrice); err != nil {
			return errors.Annotatef(err, "seeding service %q", s.Key)
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Annotate(err, "committing seed transaction")
	}
	return nil
}
