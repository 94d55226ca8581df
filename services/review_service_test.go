package services

import (
	"testing"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p := e.seedProduct(t, rest, "Thieboudienne", 2500)
	user := e.seedUser(t, entity.RoleCustomer)

	rev, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: 5, Comment: "excellent", RestaurantID: &rest.ID})
	require.NoError(t, err)
	require.NotNil(t, rev.RestaurantID)
	assert.Nil(t, rev.ProductID)

	rev, err = e.reviews.Create(user.ID, &CreateReviewIn{Rating: 3, ProductID: &p.ID})
	require.NoError(t, err)
	require.NotNil(t, rev.ProductID)
	assert.Nil(t, rev.RestaurantID)
}

func TestReviewRatingBounds(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)

	for _, rating := range []int{0, -1, 6} {
		_, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: rating, RestaurantID: &rest.ID})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), rating)
	}
}

func TestReviewExactlyOneTarget(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p := e.seedProduct(t, rest, "Thieboudienne", 2500)
	user := e.seedUser(t, entity.RoleCustomer)

	_, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: 4})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = e.reviews.Create(user.ID, &CreateReviewIn{Rating: 4, RestaurantID: &rest.ID, ProductID: &p.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	missing := uint(9999)
	_, err = e.reviews.Create(user.ID, &CreateReviewIn{Rating: 4, RestaurantID: &missing})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestReviewOrderReference(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)

	pending := e.seedOrder(t, user, rest, 5000, entity.StatusPreparing)
	_, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: 4, RestaurantID: &rest.ID, OrderID: &pending.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	delivered := e.seedOrder(t, user, rest, 5000, entity.StatusDelivered)
	rev, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: 4, RestaurantID: &rest.ID, OrderID: &delivered.ID})
	require.NoError(t, err)
	require.NotNil(t, rev.OrderID)

	// another customer cannot hang a review on this order
	stranger := e.seedUser(t, entity.RoleCustomer)
	_, err = e.reviews.Create(stranger.ID, &CreateReviewIn{Rating: 4, RestaurantID: &rest.ID, OrderID: &delivered.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestReviewAverages(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)

	for _, rating := range []int{5, 4, 3} {
		_, err := e.reviews.Create(user.ID, &CreateReviewIn{Rating: rating, RestaurantID: &rest.ID})
		require.NoError(t, err)
	}

	out, err := e.reviews.ListForRestaurant(rest.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Count)
	assert.InDelta(t, 4.0, out.Average, 0.001)
	assert.Len(t, out.Items, 3)
}
