package services

import (
	"sync"
	"testing"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/pkg/notify"
	"github.com/azamatp047/shukrona-backend/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Async notification assertions poll with these bounds.
const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// recordingSender captures outbound notifications so tests can assert on
// them without any network.
type recordingSender struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingSender) Send(chatID, text string, _ []notify.Button) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, chatID+": "+text)
	return nil
}

type testEnv struct {
	db *gorm.DB

	users    *UserService
	couriers *CourierService
	products *ProductService
	orders   *OrderService
	finance  *FinanceService

	sender *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Courier{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderPriceHistory{},
		&entity.SalaryPayment{}, &entity.Expense{},
	))

	userRepo := repository.NewUserRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	financeRepo := repository.NewFinanceRepository(db)

	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(sender, zap.NewNop())
	admins := NewAdminChecker([]string{"admin-1"})

	return &testEnv{
		db:       db,
		users:    NewUserService(db, userRepo),
		couriers: NewCourierService(db, courierRepo, orderRepo),
		products: NewProductService(db, productRepo),
		orders: NewOrderService(db, orderRepo, userRepo, courierRepo, productRepo,
			dispatcher, admins, 3),
		finance: NewFinanceService(db, financeRepo, orderRepo, courierRepo, productRepo),
		sender:  sender,
	}
}

// ----- seed helpers -----

func (e *testEnv) seedUser(t *testing.T, chatID string) *entity.User {
	t.Helper()
	u, err := e.users.Register(&RegisterUserReq{
		ChatID: chatID,
		Name:   "Customer " + chatID,
		Phone:  "+998900000000",
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) seedCourier(t *testing.T, chatID string) *entity.Courier {
	t.Helper()
	c, err := e.couriers.Create(&CreateCourierReq{
		ChatID: chatID,
		Name:   "Courier " + chatID,
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) seedProduct(t *testing.T, name string, buy, sell int64, stock int) *entity.Product {
	t.Helper()
	p, err := e.products.Create(&CreateProductReq{
		Name:      name,
		BuyPrice:  buy,
		SellPrice: sell,
		Stock:     stock,
	})
	require.NoError(t, err)
	return p
}

// placeOrder creates an order for the user with one line.
func (e *testEnv) placeOrder(t *testing.T, userChatID string, productID uint, qty int) uint {
	t.Helper()
	out, err := e.orders.Create(&CreateOrderReq{
		ChatID: userChatID,
		Items:  []OrderItemIn{{ProductID: productID, Quantity: qty}},
	})
	require.NoError(t, err)
	return out.ID
}

// deliveredOrder walks one order through the whole lifecycle and returns
// its id. The final amount ends up locked at the base total.
func (e *testEnv) deliveredOrder(t *testing.T, userChatID string, courier *entity.Courier, productID uint, qty int) uint {
	t.Helper()
	id := e.placeOrder(t, userChatID, productID, qty)
	require.NoError(t, e.orders.Assign(id, courier.ID))
	require.NoError(t, e.orders.Accept(id, courier.ID, "30 min"))
	require.NoError(t, e.orders.LockPrice(id, courier.ID))
	require.NoError(t, e.orders.Deliver(id, courier.ID))
	return id
}

func (e *testEnv) reloadOrder(t *testing.T, id uint) *entity.Order {
	t.Helper()
	var o entity.Order
	require.NoError(t, e.db.First(&o, id).Error)
	return &o
}

func (e *testEnv) reloadProduct(t *testing.T, id uint) *entity.Product {
	t.Helper()
	var p entity.Product
	require.NoError(t, e.db.First(&p, id).Error)
	return &p
}
