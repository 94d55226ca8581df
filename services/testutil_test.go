package services

import (
	"fmt"
	"testing"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack onto an in-memory sqlite database.
type testEnv struct {
	db *gorm.DB

	cart    *CartService
	orders  *OrderService
	finance *FinanceService
	likes   *LikeService
	reviews *ReviewService
	rests   *RestaurantService
	catalog *CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{},
		&entity.Product{},
		&entity.Cart{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Review{},
		&entity.Like{},
	))

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	prodRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	finRepo := repository.NewFinanceRepository(db)

	authz := NewAuthorizer(restRepo)

	return &testEnv{
		db:      db,
		cart:    NewCartService(db, cartRepo, prodRepo, restRepo),
		orders:  NewOrderService(db, orderRepo, cartRepo, prodRepo, restRepo, authz),
		finance: NewFinanceService(finRepo, authz, 10, 6),
		likes:   NewLikeService(db, likeRepo),
		reviews: NewReviewService(reviewRepo, restRepo, prodRepo, orderRepo),
		rests:   NewRestaurantService(restRepo, userRepo, authz),
		catalog: NewCatalogService(catRepo, prodRepo, authz),
	}
}

var userSeq int

func (e *testEnv) seedUser(t *testing.T, role string) *entity.User {
	t.Helper()
	userSeq++
	u := &entity.User{
		Email:     fmt.Sprintf("user%d@test.local", userSeq),
		Password:  "x",
		FirstName: "Test",
		Role:      role,
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedRestaurant(t *testing.T, owner *entity.User, fee, minOrder int64) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:           "Chez Test",
		DeliveryFee:    fee,
		MinOrderAmount: minOrder,
		IsActive:       true,
		UserID:         owner.ID,
	}
	require.NoError(t, e.db.Create(r).Error)
	return r
}

func (e *testEnv) seedProduct(t *testing.T, rest *entity.Restaurant, name string, price int64) *entity.Product {
	t.Helper()
	cat := &entity.Category{Name: "Plats", RestaurantID: rest.ID}
	require.NoError(t, e.db.Create(cat).Error)
	p := &entity.Product{
		Name:         name,
		Price:        price,
		Active:       true,
		RestaurantID: rest.ID,
		CategoryID:   cat.ID,
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) seedOrder(t *testing.T, user *entity.User, rest *entity.Restaurant, total int64, status entity.OrderStatus) *entity.Order {
	t.Helper()
	userSeq++
	o := &entity.Order{
		OrderNumber:   fmt.Sprintf("CMD-TEST-%06d", userSeq),
		Status:        status,
		PaymentStatus: entity.PaymentPending,
		PaymentMethod: entity.PayCash,
		DeliveryType:  entity.DeliveryTypeDelivery,
		Subtotal:      total,
		Total:         total,
		UserID:        user.ID,
		RestaurantID:  rest.ID,
		CustomerName:  "Test",
		CustomerPhone: "770000000",
	}
	require.NoError(t, e.db.Create(o).Error)
	return o
}

func adminActor() Actor { return Actor{UserID: 1, Role: entity.RoleAdmin} }

func ownerActor(u *entity.User, rest *entity.Restaurant) Actor {
	return Actor{UserID: u.ID, Role: entity.RoleRestaurator, RestaurantID: rest.ID}
}
