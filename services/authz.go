package services

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"
)

// Actor is the authenticated caller as seen by the service layer.
// RestaurantID is the bound restaurant for restaurators, 0 otherwise.
type Actor struct {
	UserID       uint
	Role         string
	RestaurantID uint
}

func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// Authorizer is the single allow/deny gate for restaurant-scoped mutations.
// Every mutating entry point goes through it; controllers never branch on
// roles themselves.
type Authorizer struct {
	RestRepo *repository.RestaurantRepository
}

func NewAuthorizer(restRepo *repository.RestaurantRepository) *Authorizer {
	return &Authorizer{RestRepo: restRepo}
}

// RequireRestaurant allows admins anywhere and restaurators on the
// restaurant they own. Ownership is checked against the database, not the
// token, so a revoked binding takes effect immediately.
func (z *Authorizer) RequireRestaurant(actor Actor, restID uint) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != entity.RoleRestaurator {
		return apperr.Forbidden("forbidden")
	}
	ok, err := z.RestRepo.IsOwnedBy(restID, actor.UserID)
	if err != nil {
		return apperr.Storage(err)
	}
	if !ok {
		return apperr.Forbidden("forbidden")
	}
	return nil
}
