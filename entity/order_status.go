package entity

type OrderStatus string

const (
	StatusReceived   OrderStatus = "RECEIVED"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusReady      OrderStatus = "READY"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

const (
	PayCash        = "CASH"
	PayWave        = "WAVE"
	PayOrangeMoney = "ORANGE_MONEY"
)

const (
	DeliveryTypeDelivery = "DELIVERY"
	DeliveryTypePickup   = "PICKUP"
)

// orderTransitions lists the legal forward edges. READY → DELIVERED covers
// pickup orders, which never enter the courier leg. Backward moves are not
// edges at all, so a regression like READY → PREPARING is rejected.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusReceived:   {StatusPreparing, StatusCancelled},
	StatusPreparing:  {StatusReady, StatusCancelled},
	StatusReady:      {StatusDelivering, StatusDelivered, StatusCancelled},
	StatusDelivering: {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// PendingStatuses is the "pending revenue" bucket for finance reports.
var PendingStatuses = []OrderStatus{StatusReceived, StatusPreparing, StatusReady, StatusDelivering}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether s → next is a legal move.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PayCash, PayWave, PayOrangeMoney:
		return true
	}
	return false
}

func ValidDeliveryType(t string) bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypePickup
}
