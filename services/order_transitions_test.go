package services

import (
	"testing"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycleForward(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	actor := ownerActor(owner, rest)

	for _, next := range []entity.OrderStatus{
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusDelivering,
		entity.StatusDelivered,
	} {
		require.NoError(t, e.orders.SetStatus(actor, o.ID, next))
	}

	got, err := e.orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)

	// delivered is terminal
	err = e.orders.SetStatus(actor, o.ID, entity.StatusCancelled)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOrderPickupSkipsDelivering(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusReady)

	require.NoError(t, e.orders.SetStatus(ownerActor(owner, rest), o.ID, entity.StatusDelivered))
}

func TestOrderBackwardMoveRejected(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusReady)
	actor := ownerActor(owner, rest)

	err := e.orders.SetStatus(actor, o.ID, entity.StatusPreparing)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// skipping ahead is not a legal move either
	o2 := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	err = e.orders.SetStatus(actor, o2.ID, entity.StatusDelivered)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOrderCancelFromAnyActiveState(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	actor := ownerActor(owner, rest)

	for _, from := range entity.PendingStatuses {
		o := e.seedOrder(t, user, rest, 5000, from)
		require.NoError(t, e.orders.SetStatus(actor, o.ID, entity.StatusCancelled), string(from))
	}

	// but never out of a terminal state
	o := e.seedOrder(t, user, rest, 5000, entity.StatusCancelled)
	err := e.orders.SetStatus(actor, o.ID, entity.StatusDelivered)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOrderSameStatusRejected(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusPreparing)

	err := e.orders.SetStatus(ownerActor(owner, rest), o.ID, entity.StatusPreparing)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOrderUnknownStatusRejected(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)

	err := e.orders.SetStatus(ownerActor(owner, rest), o.ID, entity.OrderStatus("SHIPPED"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestOrderStatusAuthz(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	intruder := e.seedUser(t, entity.RoleRestaurator)
	intruderRest := e.seedRestaurant(t, intruder, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	o := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)

	err := e.orders.SetStatus(ownerActor(intruder, intruderRest), o.ID, entity.StatusPreparing)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	err = e.orders.SetStatus(Actor{UserID: user.ID, Role: entity.RoleCustomer}, o.ID, entity.StatusPreparing)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	// admins operate on any restaurant
	require.NoError(t, e.orders.SetStatus(adminActor(), o.ID, entity.StatusPreparing))
}

func TestCustomerCancel(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)

	o := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	require.NoError(t, e.orders.CancelByCustomer(user.ID, o.ID))
	got, err := e.orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)

	// too late once the kitchen started
	o2 := e.seedOrder(t, user, rest, 5000, entity.StatusPreparing)
	err = e.orders.CancelByCustomer(user.ID, o2.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// someone else's order reads as absent
	stranger := e.seedUser(t, entity.RoleCustomer)
	o3 := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	err = e.orders.CancelByCustomer(stranger.ID, o3.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSetPaymentStatus(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)
	actor := ownerActor(owner, rest)

	o := e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	require.NoError(t, e.orders.SetPaymentStatus(actor, o.ID, entity.PaymentPaid))
	got, err := e.orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)

	err = e.orders.SetPaymentStatus(actor, o.ID, "REFUNDED")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	cancelled := e.seedOrder(t, user, rest, 5000, entity.StatusCancelled)
	err = e.orders.SetPaymentStatus(actor, cancelled.ID, entity.PaymentPaid)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}
