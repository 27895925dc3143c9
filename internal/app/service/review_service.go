package service

import (
	"context"
	"time"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
	"github.com/yonatan-reicher/staymarket-backend/pkg/redis"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	cache      *redis.RecommendationCache
}

func NewReviewService(reviewRepo *repository.ReviewRepository, cache *redis.RecommendationCache) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, cache: cache}
}

// AddReview records a customer's review of an apartment. It requires a
// reservation by that customer that ended on or before the review date
// (NOT_EXISTS otherwise) and at most one review per customer and apartment
// (ALREADY_EXISTS on the second attempt).
func (s *ReviewService) AddReview(customerID, apartmentID int, date time.Time, rating int, text string) outcome.Outcome {
	if customerID <= 0 || apartmentID <= 0 || date.IsZero() {
		return outcome.BadParams
	}
	if rating < 1 || rating > 10 {
		return outcome.BadParams
	}

	rows, err := s.reviewRepo.InsertIfStayed(&model.Review{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		Date:        date,
		Rating:      rating,
		Text:        text,
	})
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.NotExists)
	}
	if rows == 0 {
		// no reservation ended by the review date
		return outcome.NotExists
	}

	s.cache.Invalidate(context.Background())
	return outcome.OK
}

// UpdateReview rewrites an existing review. The review must exist and its
// current date must not be after the new one; both failures report
// NOT_EXISTS.
func (s *ReviewService) UpdateReview(customerID, apartmentID int, date time.Time, rating int, text string) outcome.Outcome {
	if customerID <= 0 || apartmentID <= 0 || date.IsZero() {
		return outcome.BadParams
	}
	if rating < 1 || rating > 10 {
		return outcome.BadParams
	}

	rows, err := s.reviewRepo.UpdateIfNotBackdated(&model.Review{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		Date:        date,
		Rating:      rating,
		Text:        text,
	})
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.NotExists)
	}
	if rows == 0 {
		return outcome.NotExists
	}

	s.cache.Invalidate(context.Background())
	return outcome.OK
}

// GetReview returns one customer's review of one apartment, zero sentinel
// when absent.
func (s *ReviewService) GetReview(customerID, apartmentID int) model.Review {
	if customerID <= 0 || apartmentID <= 0 {
		return model.Review{}
	}

	review, err := s.reviewRepo.FindByKey(customerID, apartmentID)
	if err != nil {
		return model.Review{}
	}
	return review
}

// GetApartmentReviews lists an apartment's reviews from a date onward,
// newest first. A zero since date means all of them.
func (s *ReviewService) GetApartmentReviews(apartmentID int, since time.Time) []model.Review {
	if apartmentID <= 0 {
		return []model.Review{}
	}

	reviews, err := s.reviewRepo.FindByApartmentSince(apartmentID, since)
	if err != nil {
		logger.Error("Failed to list apartment reviews", err, map[string]interface{}{
			"apartment_id": apartmentID,
		})
		return []model.Review{}
	}
	return reviews
}
