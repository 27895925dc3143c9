package db

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
	"gorm.io/gorm"
)

// tables in foreign-key order: referencing tables last, so ClearData and
// Drop can walk the list front to back.
var tables = []string{
	"reviews",
	"reservations",
	"ownerships",
	"apartments",
	"customers",
	"owners",
}

var views = []string{
	"owner_apartments",
	"apartment_avg_ratings",
	"customer_rating_ratios",
}

// Migrate creates the schema on the global connection
func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB creates all tables and derived views. It is idempotent: tables
// are altered in place by AutoMigrate and views are dropped and recreated.
func MigrateDB(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Owner{},
		&model.Customer{},
		&model.Apartment{},
		&model.Ownership{},
		&model.Reservation{},
		&model.Review{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := createViews(db); err != nil {
		logger.Error("Failed to create aggregate views", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
		"views_count":  len(views),
	})
	return nil
}

// createViews builds the derived aggregate views the query layer reads from.
// Each one bakes in a zero-default or pairwise aggregation that would be easy
// to get wrong when filtering in application code.
func createViews(db *gorm.DB) error {
	type namedView struct {
		name string
		stmt string
	}

	statements := []namedView{
		// Ownership joined with both endpoints, one row per owned apartment.
		{"owner_apartments", `
			CREATE VIEW owner_apartments AS
			SELECT ow.owner_id, o.name, ow.apartment_id, a.address, a.city, a.country, a.size
			FROM ownerships ow
			JOIN owners o ON o.id = ow.owner_id
			JOIN apartments a ON a.id = ow.apartment_id`},
		// Average rating per apartment; apartments nobody reviewed appear
		// with rating 0 instead of being absent.
		{"apartment_avg_ratings", `
			CREATE VIEW apartment_avg_ratings AS
			SELECT apartment_id, AVG(CAST(rating AS REAL)) AS average_rating
			FROM reviews
			GROUP BY apartment_id
			UNION ALL
			SELECT id AS apartment_id, 0 AS average_rating
			FROM apartments
			WHERE id NOT IN (SELECT apartment_id FROM reviews)`},
		// Pairwise rating generosity: for customers who reviewed at least
		// one common apartment, the mean of (mine / theirs) over those
		// apartments.
		{"customer_rating_ratios", `
			CREATE VIEW customer_rating_ratios AS
			SELECT r1.customer_id AS customer_id,
			       r2.customer_id AS other_id,
			       AVG(r1.rating / CAST(r2.rating AS REAL)) AS ratio
			FROM reviews r1
			JOIN reviews r2 ON r2.apartment_id = r1.apartment_id
			WHERE r1.customer_id <> r2.customer_id
			GROUP BY r1.customer_id, r2.customer_id`},
	}

	for _, v := range statements {
		if err := db.Exec("DROP VIEW IF EXISTS " + v.name).Error; err != nil {
			return err
		}
		if err := db.Exec(v.stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// ClearData deletes every row from every table, keeping the schema
func ClearData(db *gorm.DB) error {
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// Drop removes all views and tables
func Drop(db *gorm.DB) error {
	for _, view := range views {
		if err := db.Exec("DROP VIEW IF EXISTS " + view).Error; err != nil {
			return err
		}
	}
	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
