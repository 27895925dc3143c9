package service

import (
	"context"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
	"github.com/yonatan-reicher/staymarket-backend/pkg/redis"
)

// AnalyticsService exposes the aggregate and recommendation queries. Query
// operations never fail outward: storage errors are logged and reported as
// the empty or zero result.
type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	cache         *redis.RecommendationCache
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, cache *redis.RecommendationCache) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo, cache: cache}
}

// ApartmentRating is the mean of the apartment's review ratings, 0 with no
// reviews and 0 for an unknown apartment.
func (s *AnalyticsService) ApartmentRating(apartmentID int) float64 {
	if apartmentID <= 0 {
		return 0
	}

	rating, err := s.analyticsRepo.ApartmentRating(apartmentID)
	if err != nil {
		logger.Error("Apartment rating query failed", err, map[string]interface{}{
			"apartment_id": apartmentID,
		})
		return 0
	}
	return rating
}

// OwnerRating is the mean of the owner's apartments' ratings, 0 with no
// apartments.
func (s *AnalyticsService) OwnerRating(ownerID int) float64 {
	if ownerID <= 0 {
		return 0
	}

	rating, err := s.analyticsRepo.OwnerRating(ownerID)
	if err != nil {
		logger.Error("Owner rating query failed", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		return 0
	}
	return rating
}

// TopCustomer is the customer with the most reservations, smallest id on a
// tie; sentinel when there are no customers at all.
func (s *AnalyticsService) TopCustomer() model.Customer {
	customer, err := s.analyticsRepo.TopCustomer()
	if err != nil {
		logger.Error("Top customer query failed", err)
		return model.Customer{}
	}
	return customer
}

// ReservationsPerOwner counts bookings over every owner's apartments,
// including owners at zero.
func (s *AnalyticsService) ReservationsPerOwner() []model.OwnerReservationCount {
	counts, err := s.analyticsRepo.ReservationsPerOwner()
	if err != nil {
		logger.Error("Reservations per owner query failed", err)
		return []model.OwnerReservationCount{}
	}
	return counts
}

// ProfitPerMonth reports twelve rows for the year, months ascending.
func (s *AnalyticsService) ProfitPerMonth(year int) []model.MonthlyProfit {
	profits, err := s.analyticsRepo.ProfitPerMonth(year)
	if err != nil {
		logger.Error("Profit per month query failed", err, map[string]interface{}{
			"year": year,
		})
		profits = make([]model.MonthlyProfit, 0, 12)
		for month := 1; month <= 12; month++ {
			profits = append(profits, model.MonthlyProfit{Month: month})
		}
	}
	return profits
}

// AllCityOwners lists owners present in every (city, country) pair.
func (s *AnalyticsService) AllCityOwners() []model.Owner {
	owners, err := s.analyticsRepo.AllCityOwners()
	if err != nil {
		logger.Error("All-city owners query failed", err)
		return []model.Owner{}
	}
	return owners
}

// BestValueForMoney is the apartment with the highest rating per nightly
// price unit; sentinel when no apartment has priced nights.
func (s *AnalyticsService) BestValueForMoney() model.Apartment {
	apartment, err := s.analyticsRepo.BestValueForMoney()
	if err != nil {
		logger.Error("Best value query failed", err)
		return model.Apartment{}
	}
	return apartment
}

// RecommendationsFor predicts ratings for apartments the customer never
// reserved, serving from the cache when possible. A customer with no
// reviews, or with nothing left to reserve, gets an empty list.
func (s *AnalyticsService) RecommendationsFor(customerID int) []model.Recommendation {
	if customerID <= 0 {
		return []model.Recommendation{}
	}

	ctx := context.Background()
	if cached, ok := s.cache.Get(ctx, customerID); ok {
		return cached
	}

	recommendations, err := s.analyticsRepo.RecommendationsFor(customerID)
	if err != nil {
		logger.Error("Recommendation query failed", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return []model.Recommendation{}
	}

	s.cache.Set(ctx, customerID, recommendations)
	return recommendations
}
