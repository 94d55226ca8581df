package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderNotifier pushes order events to the live feed. The ws hub implements
// it; a nil notifier is a no-op.
type OrderNotifier interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(o *entity.Order)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	RestRepo    *repository.RestaurantRepository
	Authz       *Authorizer
	Notifier    OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	restRepo *repository.RestaurantRepository,
	authz *Authorizer,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		ProductRepo: productRepo, RestRepo: restRepo, Authz: authz,
	}
}

type CheckoutReq struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Address       string `json:"address"`
	DeliveryType  string `json:"deliveryType" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Note          string `json:"note"`
}

// Checkout turns the user's cart into an order. Everything is re-validated
// and re-priced from the product rows inside one transaction: cart snapshots
// are display data, not money data.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*entity.Order, error) {
	if !entity.ValidDeliveryType(req.DeliveryType) {
		return nil, apperr.Validation("invalid delivery type")
	}
	method := repository.NormalizePaymentMethod(req.PaymentMethod)
	if !entity.ValidPaymentMethod(method) {
		return nil, apperr.Validation("invalid payment method")
	}
	if req.DeliveryType == entity.DeliveryTypeDelivery && strings.TrimSpace(req.Address) == "" {
		return nil, apperr.Validation("address is required for delivery")
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(cart.Items) == 0 || cart.RestaurantID == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	rest, err := s.RestRepo.Get(cart.RestaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("restaurant not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !rest.IsActive {
		return nil, apperr.Conflict("restaurant is closed")
	}

	var order *entity.Order
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		type row struct {
			productID uint
			name      string
			qty       int
			unitPrice int64
			note      string
		}
		rows := make([]row, 0, len(cart.Items))
		var subtotal int64

		for _, it := range cart.Items {
			p, err := s.ProductRepo.GetBasicsTx(tx, it.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("product #%d is no longer available", it.ProductID)
			}
			if err != nil {
				return err
			}
			if !p.Active {
				return apperr.NotFound("product %q is no longer available", p.Name)
			}
			// Every line must resolve to the cart's restaurant; a malformed
			// request with mixed restaurants fails here instead of riding on
			// whatever the first line happened to be.
			if p.RestaurantID != cart.RestaurantID {
				return apperr.Conflict("product %q does not belong to this restaurant", p.Name)
			}
			rows = append(rows, row{p.ID, p.Name, it.Qty, p.Price, it.Note})
			subtotal += p.Price * int64(it.Qty)
		}

		if subtotal < rest.MinOrderAmount {
			return apperr.Validation("order total is below the minimum of %d", rest.MinOrderAmount)
		}

		deliveryFee := int64(0)
		if req.DeliveryType == entity.DeliveryTypeDelivery {
			deliveryFee = rest.DeliveryFee
		}

		num, err := s.newOrderNumber()
		if err != nil {
			return err
		}

		o := &entity.Order{
			OrderNumber:   num,
			Status:        entity.StatusReceived,
			PaymentStatus: entity.PaymentPending,
			PaymentMethod: method,
			DeliveryType:  req.DeliveryType,
			Subtotal:      subtotal,
			DeliveryFee:   deliveryFee,
			Total:         subtotal + deliveryFee,
			UserID:        userID,
			RestaurantID:  cart.RestaurantID,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			Address:       strings.TrimSpace(req.Address),
			Note:          req.Note,
		}
		if err := s.Repo.CreateOrder(tx, o); err != nil {
			return err
		}

		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:     o.ID,
				ProductID:   r.productID,
				ProductName: r.name,
				Qty:         r.qty,
				UnitPrice:   r.unitPrice,
				Total:       r.unitPrice * int64(r.qty),
				Note:        r.note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			o.OrderItems = append(o.OrderItems, oi)
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		order = o
		return nil
	})
	if txErr != nil {
		if apperr.KindOf(txErr) != apperr.KindStorage {
			return nil, txErr
		}
		return nil, apperr.Storage(txErr)
	}

	if s.Notifier != nil {
		s.Notifier.OrderCreated(order)
	}
	return order, nil
}

// newOrderNumber builds a human-readable, time-derived number. The uuid
// suffix keeps two checkouts within the same second apart.
func (s *OrderService) newOrderNumber() (string, error) {
	for i := 0; i < 5; i++ {
		num := fmt.Sprintf("CMD-%s-%s",
			time.Now().Format("20060102-150405"),
			strings.ToUpper(uuid.NewString()[:6]))
		exists, err := s.Repo.OrderNumberExists(num)
		if err != nil {
			return "", err
		}
		if !exists {
			return num, nil
		}
	}
	return "", fmt.Errorf("could not allocate order number")
}

// ----- Listings -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	out, err := s.Repo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

type OrderDetail struct {
	Order *entity.Order      `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &OrderDetail{Order: o, Items: items}, nil
}

type RestaurantOrderList struct {
	Items []repository.RestaurantOrderSummary `json:"items"`
	Total int64                               `json:"total"`
	Page  int                                 `json:"page"`
	Limit int                                 `json:"limit"`
}

func (s *OrderService) ListForRestaurant(actor Actor, restID uint, status *entity.OrderStatus, page, limit int) (*RestaurantOrderList, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &RestaurantOrderList{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ExportOrders returns the raw rows behind the CSV download, inclusive of
// both range ends.
func (s *OrderService) ExportOrders(actor Actor, restID uint, from, to time.Time) ([]entity.Order, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	y, m, d := from.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	y, m, d = to.Date()
	toExcl := time.Date(y, m, d, 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)

	out, err := s.Repo.ListOrdersForExport(restID, from, toExcl)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *OrderService) DetailForRestaurant(actor Actor, restID, orderID uint) (*OrderDetail, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &OrderDetail{Order: o, Items: items}, nil
}
