package services

import (
	"errors"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	RestRepo    *repository.RestaurantRepository
	ProductRepo *repository.ProductRepository
	OrderRepo   *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, rr *repository.RestaurantRepository, pr *repository.ProductRepository, or *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, RestRepo: rr, ProductRepo: pr, OrderRepo: or}
}

type CreateReviewIn struct {
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
	RestaurantID *uint  `json:"restaurantId"`
	ProductID    *uint  `json:"productId"`
	OrderID      *uint  `json:"orderId"`
}

// Create validates the rating bounds and the exactly-one-target rule, then
// stores the review.
func (s *ReviewService) Create(userID uint, in *CreateReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	hasRest := in.RestaurantID != nil && *in.RestaurantID != 0
	hasProd := in.ProductID != nil && *in.ProductID != 0
	if hasRest == hasProd {
		return nil, apperr.Validation("review must target exactly one of restaurant or product")
	}

	if hasRest {
		ok, err := s.RestRepo.Exists(*in.RestaurantID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		if !ok {
			return nil, apperr.NotFound("restaurant not found")
		}
	} else {
		_, err := s.ProductRepo.Get(*in.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		if err != nil {
			return nil, apperr.Storage(err)
		}
	}

	if in.OrderID != nil && *in.OrderID != 0 {
		o, err := s.OrderRepo.GetOrderForUser(userID, *in.OrderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		if err != nil {
			return nil, apperr.Storage(err)
		}
		if o.Status != entity.StatusDelivered {
			return nil, apperr.Validation("only delivered orders can be reviewed")
		}
	} else {
		in.OrderID = nil
	}

	rev := &entity.Review{
		Rating:       in.Rating,
		Comment:      in.Comment,
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		ProductID:    in.ProductID,
		OrderID:      in.OrderID,
	}
	if !hasRest {
		rev.RestaurantID = nil
	}
	if !hasProd {
		rev.ProductID = nil
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, apperr.Storage(err)
	}
	return rev, nil
}

type ReviewList struct {
	Items   []entity.Review `json:"items"`
	Average float64         `json:"average"`
	Count   int64           `json:"count"`
}

func (s *ReviewService) ListForRestaurant(restID uint, limit int) (*ReviewList, error) {
	items, err := s.Repo.ListForRestaurant(restID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	avg, cnt, err := s.Repo.AverageForRestaurant(restID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &ReviewList{Items: items, Average: avg, Count: cnt}, nil
}

func (s *ReviewService) ListForProduct(productID uint, limit int) (*ReviewList, error) {
	items, err := s.Repo.ListForProduct(productID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	avg, cnt, err := s.Repo.AverageForProduct(productID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &ReviewList{Items: items, Average: avg, Count: cnt}, nil
}
