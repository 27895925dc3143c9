package repository

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/db"

	"gorm.io/gorm"
)

// AnalyticsRepository computes the cross-entity aggregates. It reads from
// the derived views where a zero-default or pairwise aggregation is involved,
// so that entities without reviews or reservations are never silently
// dropped by a filtering join.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// ApartmentRating returns the apartment's average rating, 0 when it has no
// reviews, and 0 when the apartment does not exist.
func (r *AnalyticsRepository) ApartmentRating(apartmentID int) (float64, error) {
	var rating float64
	tx := r.db.Raw(
		"SELECT average_rating FROM apartment_avg_ratings WHERE apartment_id = ?",
		apartmentID,
	).Scan(&rating)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, nil
	}
	return rating, nil
}

// OwnerRating averages the per-apartment average ratings over everything the
// owner holds. Unreviewed apartments enter the average as 0; an owner with
// no apartments rates 0.
func (r *AnalyticsRepository) OwnerRating(ownerID int) (float64, error) {
	var rating float64
	err := r.db.Raw(`
		SELECT COALESCE(AVG(average_rating), 0)
		FROM apartment_avg_ratings ar
		JOIN ownerships ow ON ow.apartment_id = ar.apartment_id
		WHERE ow.owner_id = ?`,
		ownerID,
	).Scan(&rating).Error
	return rating, err
}

// TopCustomer returns the customer with the most reservations, smallest id
// on a tie. Customers with no reservations count 0 rather than being
// excluded, so with no reservations at all the smallest-id customer wins.
func (r *AnalyticsRepository) TopCustomer() (model.Customer, error) {
	var customer model.Customer
	tx := r.db.Raw(`
		SELECT c.id, c.name
		FROM customers c
		JOIN (
			SELECT customer_id, COUNT(*) AS reservations
			FROM reservations
			GROUP BY customer_id
			UNION ALL
			SELECT id AS customer_id, 0 AS reservations
			FROM customers
			WHERE id NOT IN (SELECT customer_id FROM reservations)
		) t ON t.customer_id = c.id
		ORDER BY t.reservations DESC, c.id ASC
		LIMIT 1`,
	).Scan(&customer)
	if tx.Error != nil {
		return model.Customer{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return model.Customer{}, nil
	}
	return customer, nil
}

// ReservationsPerOwner counts reservations across each owner's apartments.
// The left joins keep owners with no apartments or no bookings in the result
// at 0. Rows are grouped by owner id, so same-named owners stay separate,
// and ordered by id ascending.
func (r *AnalyticsRepository) ReservationsPerOwner() ([]model.OwnerReservationCount, error) {
	var counts []model.OwnerReservationCount
	err := r.db.Raw(`
		SELECT o.id AS owner_id, o.name, COUNT(res.id) AS reservations
		FROM owners o
		LEFT JOIN ownerships ow ON ow.owner_id = o.id
		LEFT JOIN reservations res ON res.apartment_id = ow.apartment_id
		GROUP BY o.id, o.name
		ORDER BY o.id`,
	).Scan(&counts).Error
	return counts, err
}

// ProfitPerMonth reports 15% of the reservation prices ending in each month
// of the year. The result always holds exactly twelve rows, months 1..12
// ascending; the zero-fill runs over that fixed domain so empty months
// cannot vanish.
func (r *AnalyticsRepository) ProfitPerMonth(year int) ([]model.MonthlyProfit, error) {
	monthExpr := db.MonthExpr(r.db, "end_date")
	yearExpr := db.YearExpr(r.db, "end_date")

	var rows []model.MonthlyProfit
	err := r.db.Raw(`
		SELECT `+monthExpr+` AS month, 0.15 * SUM(price) AS profit
		FROM reservations
		WHERE `+yearExpr+` = ?
		GROUP BY `+monthExpr,
		year,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]float64, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row.Profit
	}

	profits := make([]model.MonthlyProfit, 0, 12)
	for month := 1; month <= 12; month++ {
		profits = append(profits, model.MonthlyProfit{Month: month, Profit: byMonth[month]})
	}
	return profits, nil
}

// AllCityOwners lists owners that hold at least one apartment in every
// (city, country) pair present in the apartment set, ordered by id. With no
// apartments at all every owner qualifies vacuously.
func (r *AnalyticsRepository) AllCityOwners() ([]model.Owner, error) {
	var owners []model.Owner
	err := r.db.Raw(`
		SELECT DISTINCT o.id, o.name
		FROM owners o
		WHERE NOT EXISTS (
			SELECT 1 FROM apartments a
			WHERE NOT EXISTS (
				SELECT 1 FROM owner_apartments oa
				WHERE oa.city = a.city
				AND oa.country = a.country
				AND oa.owner_id = o.id
			)
		)
		ORDER BY o.id`,
	).Scan(&owners).Error
	return owners, err
}

// BestValueForMoney returns the apartment maximizing average rating divided
// by average nightly price. Apartments with no priced nights are excluded:
// no reservations means no nightly price, and a same-day reservation has
// zero nights. Ties break toward the smallest id.
func (r *AnalyticsRepository) BestValueForMoney() (model.Apartment, error) {
	nightsExpr := db.NightsExpr(r.db, "start_date", "end_date")

	var apartment model.Apartment
	tx := r.db.Raw(`
		SELECT a.id, a.address, a.city, a.country, a.size
		FROM apartments a
		JOIN apartment_avg_ratings ar ON ar.apartment_id = a.id
		JOIN (
			SELECT apartment_id, AVG(price / `+nightsExpr+`) AS avg_night_price
			FROM reservations
			WHERE end_date > start_date
			GROUP BY apartment_id
		) p ON p.apartment_id = a.id
		ORDER BY ar.average_rating / p.avg_night_price DESC, a.id ASC
		LIMIT 1`,
	).Scan(&apartment)
	if tx.Error != nil {
		return model.Apartment{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return model.Apartment{}, nil
	}
	return apartment, nil
}

// RecommendationsFor predicts ratings for apartments the customer has never
// reserved. Each reviewer D of a candidate apartment contributes their
// rating scaled by the pairwise generosity ratio, clamped into the valid
// 1..10 range; the prediction is the mean contribution. Apartments nobody
// qualifying has reviewed are omitted. Ordered by apartment id ascending.
func (r *AnalyticsRepository) RecommendationsFor(customerID int) ([]model.Recommendation, error) {
	clamp := db.ClampExpr(r.db, "cr.ratio * rv.rating", "1", "10")

	var rows []struct {
		ID      int
		Address string
		City    string
		Country string
		Size    int
		Score   float64
	}
	err := r.db.Raw(`
		SELECT a.id, a.address, a.city, a.country, a.size,
		       AVG(`+clamp+`) AS score
		FROM apartments a
		JOIN reviews rv ON rv.apartment_id = a.id
		JOIN customer_rating_ratios cr
			ON cr.other_id = rv.customer_id
			AND cr.customer_id = ?
		WHERE a.id NOT IN (
			SELECT apartment_id FROM reservations WHERE customer_id = ?
		)
		GROUP BY a.id, a.address, a.city, a.country, a.size
		ORDER BY a.id ASC`,
		customerID, customerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recommendations := make([]model.Recommendation, 0, len(rows))
	for _, row := range rows {
		recommendations = append(recommendations, model.Recommendation{
			Apartment: model.Apartment{
				ID:      row.ID,
				Address: row.Address,
				City:    row.City,
				Country: row.Country,
				Size:    row.Size,
			},
			Score: row.Score,
		})
	}
	return recommendations, nil
}
