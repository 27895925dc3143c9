package model

// OwnerReservationCount is one row of the reservations-per-owner report.
// Every owner appears, including owners with zero reservations.
type OwnerReservationCount struct {
	OwnerID      int    `json:"owner_id"`
	Name         string `json:"name"`
	Reservations int    `json:"reservations"`
}

// MonthlyProfit is one row of the profit-per-month report. The report always
// holds exactly twelve of these, months 1..12 ascending.
type MonthlyProfit struct {
	Month  int     `json:"month"`
	Profit float64 `json:"profit"`
}

// Recommendation pairs a candidate apartment with its predicted rating for a
// particular customer.
type Recommendation struct {
	Apartment Apartment `json:"apartment"`
	Score     float64   `json:"score"`
}
