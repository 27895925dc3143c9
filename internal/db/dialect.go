package db

import "gorm.io/gorm"

// The production driver is postgres and the test suite runs on sqlite.
// Most of the query layer is plain portable SQL; the helpers below cover
// the few expressions where the dialects disagree.

func isSQLite(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}

// MonthExpr returns an integer month-of-year expression over a date column.
func MonthExpr(db *gorm.DB, column string) string {
	if isSQLite(db) {
		return "CAST(strftime('%m', " + column + ") AS INTEGER)"
	}
	return "CAST(EXTRACT(MONTH FROM " + column + ") AS INTEGER)"
}

// YearExpr returns an integer year expression over a date column.
func YearExpr(db *gorm.DB, column string) string {
	if isSQLite(db) {
		return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
	}
	return "CAST(EXTRACT(YEAR FROM " + column + ") AS INTEGER)"
}

// NightsExpr returns the number of nights between two date columns.
func NightsExpr(db *gorm.DB, start, end string) string {
	if isSQLite(db) {
		return "(julianday(" + end + ") - julianday(" + start + "))"
	}
	return "(" + end + " - " + start + ")"
}

// ClampExpr clamps a numeric expression into [lo, hi]. sqlite spells
// LEAST/GREATEST as the scalar forms of MIN/MAX.
func ClampExpr(db *gorm.DB, expr, lo, hi string) string {
	if isSQLite(db) {
		return "MIN(MAX(" + expr + ", " + lo + "), " + hi + ")"
	}
	return "LEAST(GREATEST(" + expr + ", " + lo + "), " + hi + ")"
}
