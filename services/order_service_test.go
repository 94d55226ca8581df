package services

import (
	"strings"
	"testing"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutReq() *CheckoutReq {
	return &CheckoutReq{
		CustomerName:  "Awa Diop",
		CustomerPhone: "771234567",
		Address:       "Sacré-Coeur 3, Dakar",
		DeliveryType:  entity.DeliveryTypeDelivery,
		PaymentMethod: "cash",
	}
}

func TestCheckout(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 1000, 0)
	thiebou := e.seedProduct(t, rest, "Thieboudienne", 2500)
	yassa := e.seedProduct(t, rest, "Yassa poulet", 3000)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: thiebou.ID, Qty: 2}))
	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: yassa.ID, Qty: 1}))

	o, err := e.orders.Checkout(user.ID, checkoutReq())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusReceived, o.Status)
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
	assert.Equal(t, entity.PayCash, o.PaymentMethod)
	assert.Equal(t, int64(8000), o.Subtotal)
	assert.Equal(t, int64(1000), o.DeliveryFee)
	assert.Equal(t, int64(9000), o.Total)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "CMD-"))
	require.Len(t, o.OrderItems, 2)
	assert.Equal(t, "Thieboudienne", o.OrderItems[0].ProductName)
	assert.Equal(t, int64(5000), o.OrderItems[0].Total)

	// checkout empties the cart and drops its scope
	view, err := e.cart.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
	assert.Zero(t, view.Cart.RestaurantID)
}

func TestCheckoutPickupSkipsFeeAndAddress(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 1000, 0)
	p := e.seedProduct(t, rest, "Dibi", 4000)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p.ID, Qty: 1}))

	req := checkoutReq()
	req.DeliveryType = entity.DeliveryTypePickup
	req.Address = ""
	o, err := e.orders.Checkout(user.ID, req)
	require.NoError(t, err)
	assert.Zero(t, o.DeliveryFee)
	assert.Equal(t, int64(4000), o.Total)
}

func TestCheckoutDeliveryRequiresAddress(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, entity.RoleCustomer)

	req := checkoutReq()
	req.Address = "  "
	_, err := e.orders.Checkout(user.ID, req)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCheckoutEmptyCart(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, entity.RoleCustomer)

	_, err := e.orders.Checkout(user.ID, checkoutReq())
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCheckoutRepricesFromProducts(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p := e.seedProduct(t, rest, "Mafé", 2000)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p.ID, Qty: 2}))
	// price changed while the cart was sitting; the order must use the
	// current price, not the cart snapshot
	require.NoError(t, e.db.Model(p).Update("price", 2500).Error)

	req := checkoutReq()
	req.DeliveryType = entity.DeliveryTypePickup
	o, err := e.orders.Checkout(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), o.Subtotal)

	// later edits never rewrite the stored order
	require.NoError(t, e.db.Model(p).Update("price", 9999).Error)
	detail, err := e.orders.DetailForUser(user.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), detail.Order.Subtotal)
	assert.Equal(t, int64(2500), detail.Items[0].UnitPrice)
}

func TestCheckoutDeactivatedProductAborts(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p1 := e.seedProduct(t, rest, "Mafé", 2000)
	p2 := e.seedProduct(t, rest, "Soupou kandia", 2500)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p1.ID, Qty: 1}))
	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p2.ID, Qty: 1}))
	require.NoError(t, e.db.Model(p2).Update("active", false).Error)

	_, err := e.orders.Checkout(user.ID, checkoutReq())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Contains(t, err.Error(), "Soupou kandia")

	// nothing was persisted and the cart survived
	var orderCount int64
	require.NoError(t, e.db.Model(&entity.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
	view, err := e.cart.Get(user.ID)
	require.NoError(t, err)
	assert.Len(t, view.Cart.Items, 2)
}

func TestCheckoutBelowMinimum(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 5000)
	p := e.seedProduct(t, rest, "Pastels", 1000)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p.ID, Qty: 1}))

	_, err := e.orders.Checkout(user.ID, checkoutReq())
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCheckoutClosedRestaurant(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p := e.seedProduct(t, rest, "Dibi", 4000)
	user := e.seedUser(t, entity.RoleCustomer)

	require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p.ID, Qty: 1}))
	require.NoError(t, e.db.Model(rest).Update("is_active", false).Error)

	_, err := e.orders.Checkout(user.ID, checkoutReq())
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCheckoutInvalidInputs(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, entity.RoleCustomer)

	req := checkoutReq()
	req.DeliveryType = "DRONE"
	_, err := e.orders.Checkout(user.ID, req)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	req = checkoutReq()
	req.PaymentMethod = "bitcoin"
	_, err = e.orders.Checkout(user.ID, req)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestPaymentMethodSpellings(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	p := e.seedProduct(t, rest, "Dibi", 4000)

	for spelling, want := range map[string]string{
		"cash":         entity.PayCash,
		"Wave":         entity.PayWave,
		"orange money": entity.PayOrangeMoney,
		"OM":           entity.PayOrangeMoney,
	} {
		user := e.seedUser(t, entity.RoleCustomer)
		require.NoError(t, e.cart.Add(user.ID, &AddToCartIn{ProductID: p.ID, Qty: 1}))
		req := checkoutReq()
		req.PaymentMethod = spelling
		o, err := e.orders.Checkout(user.ID, req)
		require.NoError(t, err)
		assert.Equal(t, want, o.PaymentMethod, spelling)
	}
}

func TestRestaurantOrderListing(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, entity.RoleRestaurator)
	rest := e.seedRestaurant(t, owner, 0, 0)
	other := e.seedUser(t, entity.RoleRestaurator)
	otherRest := e.seedRestaurant(t, other, 0, 0)
	user := e.seedUser(t, entity.RoleCustomer)

	e.seedOrder(t, user, rest, 5000, entity.StatusReceived)
	e.seedOrder(t, user, rest, 7000, entity.StatusDelivered)
	e.seedOrder(t, user, otherRest, 9000, entity.StatusReceived)

	out, err := e.orders.ListForRestaurant(ownerActor(owner, rest), rest.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)

	status := entity.StatusDelivered
	out, err = e.orders.ListForRestaurant(ownerActor(owner, rest), rest.ID, &status, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)

	// an owner cannot read another restaurant's orders
	_, err = e.orders.ListForRestaurant(ownerActor(owner, rest), otherRest.ID, nil, 1, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}
