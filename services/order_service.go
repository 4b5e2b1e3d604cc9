package services

import (
	"errors"
	"fmt"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/pkg/notify"
	"github.com/azamatp047/shukrona-backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	UserRepo    *repository.UserRepository
	CourierRepo *repository.CourierRepository
	ProductRepo *repository.ProductRepository

	Notify *notify.Dispatcher
	Admins *AdminChecker

	// MaxActiveOrders caps a user's pending + with_courier orders.
	MaxActiveOrders int
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	courierRepo *repository.CourierRepository,
	productRepo *repository.ProductRepository,
	dispatcher *notify.Dispatcher,
	admins *AdminChecker,
	maxActiveOrders int,
) *OrderService {
	return &OrderService{
		DB:              db,
		Repo:            repo,
		UserRepo:        userRepo,
		CourierRepo:     courierRepo,
		ProductRepo:     productRepo,
		Notify:          dispatcher,
		Admins:          admins,
		MaxActiveOrders: maxActiveOrders,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderReq struct {
	ChatID string        `json:"chatId"`
	Items  []OrderItemIn `json:"items"`
}

type CreateOrderRes struct {
	ID          uint  `json:"id"`
	TotalAmount int64 `json:"totalAmount"`
}

// ----- Create -----

// Create places an order for the user behind the chat id. Unknown
// product ids are skipped, not errored, and stock is taken without a
// floor check — both are the long-standing creation-path behavior.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	user, err := s.UserRepo.GetByChatID(req.ChatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	active, err := s.Repo.CountActive(user.ID)
	if err != nil {
		return nil, err
	}
	if active >= int64(s.MaxActiveOrders) {
		return nil, ErrTooManyActiveOrders
	}

	// Snapshot prices up front; the catalog may change later.
	type line struct {
		productID uint
		qty       int
		buyPrice  int64
		sellPrice int64
	}
	var total int64
	lines := make([]line, 0, len(req.Items))
	for _, it := range req.Items {
		p, err := s.ProductRepo.Get(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // silent skip
			}
			return nil, err
		}
		total += p.SellPrice * int64(it.Quantity)
		lines = append(lines, line{p.ID, it.Quantity, p.BuyPrice, p.SellPrice})
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:           user.ID,
			Status:           entity.OrderPending,
			TotalAmount:      total,
			BaseTotalAmount:  total,
			FinalTotalAmount: total,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: l.productID,
				Quantity:  l.qty,
				BuyPrice:  l.buyPrice,
				SellPrice: l.sellPrice,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
			if err := s.ProductRepo.DecrementStock(tx, l.productID, l.qty); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, TotalAmount: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Broadcast(s.Admins.ChatIDs(),
		fmt.Sprintf("New order #%d from %s: %d so'm", out.ID, user.Name, out.TotalAmount))
	return &out, nil
}

// ----- Detail & lists -----

type OrderDetail struct {
	Order entity.Order               `json:"order"`
	Items []entity.OrderItem         `json:"items"`
	Log   []entity.OrderPriceHistory `json:"priceHistory"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetItems(o.ID)
	if err != nil {
		return nil, err
	}
	log, err := s.Repo.GetPriceHistory(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, Log: log}, nil
}

func (s *OrderService) ListForUser(chatID string, limit int) ([]repository.OrderSummary, error) {
	user, err := s.UserRepo.GetByChatID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Repo.ListForUser(user.ID, limit)
}

func (s *OrderService) ListByStatus(status string) ([]entity.Order, error) {
	return s.Repo.ListByStatus(status)
}

func (s *OrderService) ListUnassigned() ([]entity.Order, error) {
	return s.Repo.ListUnassigned()
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
