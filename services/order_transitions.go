package services

import (
	"errors"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"

	"gorm.io/gorm"
)

// SetStatus moves an order along the lifecycle. The legal-move check runs
// against the loaded row, then the write is a compare-and-set on that same
// status, so a concurrent transition makes this one fail instead of silently
// overwriting it.
func (s *OrderService) SetStatus(actor Actor, orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return apperr.Validation("unknown status %q", string(next))
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return apperr.Storage(err)
	}

	if err := s.Authz.RequireRestaurant(actor, o.RestaurantID); err != nil {
		return err
	}

	if next == o.Status {
		return apperr.Conflict("order is already %s", string(next))
	}
	if o.Status.Terminal() {
		return apperr.Conflict("order is %s and can no longer change", string(o.Status))
	}
	if !o.Status.CanTransitionTo(next) {
		return apperr.Conflict("cannot move order from %s to %s", string(o.Status), string(next))
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order changed concurrently, retry")
		}
		return nil
	})
	if txErr != nil {
		if apperr.KindOf(txErr) != apperr.KindStorage {
			return txErr
		}
		return apperr.Storage(txErr)
	}

	o.Status = next
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o)
	}
	return nil
}

// CancelByCustomer lets the buyer back out while the restaurant has not
// started preparing.
func (s *OrderService) CancelByCustomer(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return apperr.Storage(err)
	}
	if o.Status != entity.StatusReceived {
		return apperr.Conflict("order can no longer be cancelled")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusReceived, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order changed concurrently, retry")
		}
		return nil
	})
	if txErr != nil {
		if apperr.KindOf(txErr) != apperr.KindStorage {
			return txErr
		}
		return apperr.Storage(txErr)
	}

	o.Status = entity.StatusCancelled
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o)
	}
	return nil
}

// SetPaymentStatus marks an order PAID or FAILED. Cancelled orders are left
// alone.
func (s *OrderService) SetPaymentStatus(actor Actor, orderID uint, status string) error {
	if status != entity.PaymentPaid && status != entity.PaymentFailed {
		return apperr.Validation("unknown payment status %q", status)
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return apperr.Storage(err)
	}
	if err := s.Authz.RequireRestaurant(actor, o.RestaurantID); err != nil {
		return err
	}
	if o.Status == entity.StatusCancelled {
		return apperr.Conflict("order is cancelled")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdatePaymentStatusGuard(tx, o.ID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order changed concurrently, retry")
		}
		return nil
	})
	if txErr != nil {
		if apperr.KindOf(txErr) != apperr.KindStorage {
			return txErr
		}
		return apperr.Storage(txErr)
	}
	return nil
}
