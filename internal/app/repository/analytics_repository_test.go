package repository

import (
	"testing"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAnalyticsTest(t *testing.T) (*gorm.DB, *AnalyticsRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return testDB, NewAnalyticsRepository(testDB)
}

func seedApartment(t *testing.T, testDB *gorm.DB, id int, city string) {
	t.Helper()
	require.NoError(t, testDB.Create(&model.Apartment{
		ID:      id,
		Address: "addr " + city + " " + string(rune('0'+id)),
		City:    city,
		Country: "Israel",
		Size:    50 + id,
	}).Error)
}

func TestAnalyticsRepository_ApartmentRating(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	seedApartment(t, testDB, 1, "Tel Aviv")
	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 1, Date: day("2026-01-16"), Rating: 4, Text: "ok"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 1, Date: day("2026-01-17"), Rating: 7, Text: "good"}).Error)

	rating, err := repo.ApartmentRating(1)
	assert.NoError(t, err)
	assert.InDelta(t, 5.5, rating, 1e-9)
}

func TestAnalyticsRepository_ApartmentRating_ZeroDefaults(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	seedApartment(t, testDB, 1, "Tel Aviv")

	// No reviews yet
	rating, err := repo.ApartmentRating(1)
	assert.NoError(t, err)
	assert.Zero(t, rating)

	// No such apartment
	rating, err = repo.ApartmentRating(99)
	assert.NoError(t, err)
	assert.Zero(t, rating)
}

func TestAnalyticsRepository_OwnerRating(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Owner{ID: 1, Name: "Alice"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 1, ApartmentID: 1}).Error)
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 1, ApartmentID: 2}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 1, Date: day("2026-01-16"), Rating: 4, Text: "ok"}).Error)

	// One apartment averages 4, the unreviewed one drags it down as 0
	rating, err := repo.OwnerRating(1)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, rating, 1e-9)
}

func TestAnalyticsRepository_OwnerRating_NoApartments(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Owner{ID: 1, Name: "Alice"}).Error)

	rating, err := repo.OwnerRating(1)
	assert.NoError(t, err)
	assert.Zero(t, rating)
}

func TestAnalyticsRepository_TopCustomer(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 1, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-03-10"), EndDate: day("2026-03-12"), Price: 200}).Error)

	customer, err := repo.TopCustomer()
	require.NoError(t, err)
	assert.Equal(t, 2, customer.ID)
}

func TestAnalyticsRepository_TopCustomer_TieAndEmpty(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	// No customers at all: zero-value sentinel
	customer, err := repo.TopCustomer()
	require.NoError(t, err)
	assert.True(t, customer.IsZero())

	// With customers but no reservations the smallest id wins at 0 each
	require.NoError(t, testDB.Create(&model.Customer{ID: 3, Name: "Fay"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)

	customer, err = repo.TopCustomer()
	require.NoError(t, err)
	assert.Equal(t, 2, customer.ID)
}

func TestAnalyticsRepository_ReservationsPerOwner(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Owner{ID: 1, Name: "Alice"}).Error)
	require.NoError(t, testDB.Create(&model.Owner{ID: 2, Name: "Bob"}).Error)
	require.NoError(t, testDB.Create(&model.Owner{ID: 3, Name: "Alice"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 1, ApartmentID: 1}).Error)
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 2, ApartmentID: 2}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 200}).Error)

	counts, err := repo.ReservationsPerOwner()
	require.NoError(t, err)
	require.Len(t, counts, 3)

	// Ordered by owner id; same-named owners stay separate rows
	assert.Equal(t, model.OwnerReservationCount{OwnerID: 1, Name: "Alice", Reservations: 2}, counts[0])
	assert.Equal(t, model.OwnerReservationCount{OwnerID: 2, Name: "Bob", Reservations: 0}, counts[1])
	assert.Equal(t, model.OwnerReservationCount{OwnerID: 3, Name: "Alice", Reservations: 0}, counts[2])
}

func TestAnalyticsRepository_ProfitPerMonth(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	// Two stays ending in March, one in July, one in the wrong year
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-02-27"), EndDate: day("2026-03-02"), Price: 1000}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-03-10"), EndDate: day("2026-03-12"), Price: 500}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-07-01"), EndDate: day("2026-07-05"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2025-07-01"), EndDate: day("2025-07-05"), Price: 999}).Error)

	profits, err := repo.ProfitPerMonth(2026)
	require.NoError(t, err)
	require.Len(t, profits, 12)

	for i, row := range profits {
		assert.Equal(t, i+1, row.Month)
	}
	assert.InDelta(t, 0.15*1500, profits[2].Profit, 1e-9)
	assert.InDelta(t, 0.15*200, profits[6].Profit, 1e-9)
	assert.Zero(t, profits[0].Profit)
	assert.Zero(t, profits[11].Profit)
}

func TestAnalyticsRepository_AllCityOwners(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Owner{ID: 1, Name: "Alice"}).Error)
	require.NoError(t, testDB.Create(&model.Owner{ID: 2, Name: "Bob"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")
	seedApartment(t, testDB, 3, "Tel Aviv")

	// Alice covers both cities, Bob only one
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 1, ApartmentID: 1}).Error)
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 1, ApartmentID: 2}).Error)
	require.NoError(t, testDB.Create(&model.Ownership{OwnerID: 2, ApartmentID: 3}).Error)

	owners, err := repo.AllCityOwners()
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, 1, owners[0].ID)
}

func TestAnalyticsRepository_AllCityOwners_NoApartments(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Owner{ID: 2, Name: "Bob"}).Error)
	require.NoError(t, testDB.Create(&model.Owner{ID: 1, Name: "Alice"}).Error)

	// With no apartments every owner qualifies vacuously, ordered by id
	owners, err := repo.AllCityOwners()
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, 1, owners[0].ID)
	assert.Equal(t, 2, owners[1].ID)
}

func TestAnalyticsRepository_BestValueForMoney(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")

	// Apartment 1: rating 8, 100 per night. Apartment 2: rating 6, 50 per
	// night. 6/50 beats 8/100.
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 2, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 100}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 1, Date: day("2026-01-13"), Rating: 8, Text: "good"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 2, Date: day("2026-02-13"), Rating: 6, Text: "fair"}).Error)

	apartment, err := repo.BestValueForMoney()
	require.NoError(t, err)
	assert.Equal(t, 2, apartment.ID)
}

func TestAnalyticsRepository_BestValueForMoney_NoPricedNights(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	// A same-day reservation has zero nights and cannot price the stay
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-10"), Price: 100}).Error)

	apartment, err := repo.BestValueForMoney()
	require.NoError(t, err)
	assert.True(t, apartment.IsZero())
}

func TestAnalyticsRepository_RecommendationsFor(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")

	// Both stayed at apartment 1; only Eyal stayed at apartment 2
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 1, StartDate: day("2026-01-12"), EndDate: day("2026-01-14"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 2, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 100}).Error)

	// Dana rates apartment 1 a 3, Eyal a 5: Dana is 0.6 as generous.
	// Eyal gave apartment 2 a 7, so Dana's prediction is 0.6 * 7 = 4.2.
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 1, Date: day("2026-01-13"), Rating: 3, Text: "meh"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 1, Date: day("2026-01-15"), Rating: 5, Text: "fine"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 2, Date: day("2026-02-13"), Rating: 7, Text: "good"}).Error)

	recommendations, err := repo.RecommendationsFor(1)
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
	assert.Equal(t, 2, recommendations[0].Apartment.ID)
	assert.InDelta(t, 4.2, recommendations[0].Score, 1e-9)
}

func TestAnalyticsRepository_RecommendationsFor_Clamped(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")

	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 1, ApartmentID: 1, StartDate: day("2026-01-10"), EndDate: day("2026-01-12"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 1, StartDate: day("2026-01-12"), EndDate: day("2026-01-14"), Price: 200}).Error)
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 2, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 100}).Error)

	// Dana rates 10 where Eyal rates 2: ratio 5, raw prediction 5 * 9 = 45
	// clamps to 10
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 1, ApartmentID: 1, Date: day("2026-01-13"), Rating: 10, Text: "amazing"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 1, Date: day("2026-01-15"), Rating: 2, Text: "bad"}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 2, Date: day("2026-02-13"), Rating: 9, Text: "great"}).Error)

	recommendations, err := repo.RecommendationsFor(1)
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
	assert.InDelta(t, 10.0, recommendations[0].Score, 1e-9)
}

func TestAnalyticsRepository_RecommendationsFor_NoCommonReviewers(t *testing.T) {
	testDB, repo := setupAnalyticsTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, testDB.Create(&model.Customer{ID: 1, Name: "Dana"}).Error)
	require.NoError(t, testDB.Create(&model.Customer{ID: 2, Name: "Eyal"}).Error)
	seedApartment(t, testDB, 1, "Tel Aviv")
	seedApartment(t, testDB, 2, "Jerusalem")

	// Eyal reviewed apartment 2, but shares no reviewed apartment with
	// Dana, so there is no ratio to scale by
	require.NoError(t, testDB.Create(&model.Reservation{CustomerID: 2, ApartmentID: 2, StartDate: day("2026-02-10"), EndDate: day("2026-02-12"), Price: 100}).Error)
	require.NoError(t, testDB.Create(&model.Review{CustomerID: 2, ApartmentID: 2, Date: day("2026-02-13"), Rating: 7, Text: "good"}).Error)

	recommendations, err := repo.RecommendationsFor(1)
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}
