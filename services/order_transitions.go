package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/pkg/notify"

	"gorm.io/gorm"
)

// Transitions run "read, guard, update" inside one transaction each; the
// guarded UPDATE carries status and timestamp together so no partial
// transition is ever visible. Notifications go out after commit only.

// ----- Admin: assign a courier -----

func (s *OrderService) Assign(orderID, courierID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.Status != entity.OrderPending {
		return ErrOrderNotPending
	}

	courier, err := s.CourierRepo.Get(courierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourierNotFound
		}
		return err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.Assign(tx, o.ID, courier.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotPending
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Notify.Dispatch(courier.ChatID,
		fmt.Sprintf("Order #%d is assigned to you", o.ID),
		notify.Button{Text: "Accept", Data: fmt.Sprintf("accept:%d", o.ID)})
	s.notifyCustomer(o.UserID, fmt.Sprintf("Courier %s will handle your order #%d", courier.Name, o.ID))
	return nil
}

// ----- Courier: accept -----

func (s *OrderService) Accept(orderID, courierID uint, deliveryTime string) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if !isAssignedCourier(o, courierID) {
		return ErrUnauthorized
	}
	if o.Status != entity.OrderPending {
		return ErrOrderNotPending
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.Accept(tx, o.ID, deliveryTime, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotPending
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyCustomer(o.UserID,
		fmt.Sprintf("Order #%d is on its way, estimated %s", o.ID, deliveryTime))
	return nil
}

// ----- Courier: bonus items -----

// AddBonusItems appends zero-priced gift lines. Unlike order creation,
// this path refuses to oversell: the guard keeps stock at zero or above.
func (s *OrderService) AddBonusItems(orderID, courierID uint, items []OrderItemIn) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if !isAssignedCourier(o, courierID) {
		return ErrUnauthorized
	}
	if o.Status != entity.OrderWithCourier {
		return ErrOrderNotWithCourier
	}

	// Resolve products first; unlike creation, a bad id is an error here.
	products := make([]*entity.Product, 0, len(items))
	for _, it := range items {
		p, err := s.ProductRepo.Get(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		products = append(products, p)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, it := range items {
			p := products[i]

			ok, err := s.ProductRepo.DecrementStockGuard(tx, p.ID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{ProductID: p.ID, Name: p.Name, Available: p.Stock}
			}

			oi := entity.OrderItem{
				OrderID:   o.ID,
				ProductID: p.ID,
				Quantity:  it.Quantity,
				BuyPrice:  0,
				SellPrice: 0,
				IsBonus:   true,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
}

// ----- Courier: price adjustment and lock -----

func (s *OrderService) UpdatePrice(orderID, courierID uint, newPrice int64) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if !isAssignedCourier(o, courierID) {
		return ErrUnauthorized
	}
	if o.IsPriceLocked {
		return ErrPriceLocked
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdatePrice(tx, o.ID, newPrice)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPriceLocked
		}
		return s.Repo.CreatePriceHistory(tx, &entity.OrderPriceHistory{
			OrderID:       o.ID,
			CourierID:     courierID,
			PreviousPrice: o.FinalTotalAmount,
			NewPrice:      newPrice,
		})
	})
}

func (s *OrderService) LockPrice(orderID, courierID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if !isAssignedCourier(o, courierID) {
		return ErrUnauthorized
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.LockPrice(tx, o.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPriceLocked
		}
		return nil
	})
}

// ----- Courier: deliver -----

func (s *OrderService) Deliver(orderID, courierID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if !isAssignedCourier(o, courierID) {
		return ErrUnauthorized
	}
	if o.Status != entity.OrderWithCourier {
		return ErrOrderNotWithCourier
	}
	if !o.IsPriceLocked {
		return ErrPriceNotLocked
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.Deliver(tx, o.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPriceNotLocked
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyCustomer(o.UserID,
		fmt.Sprintf("Order #%d delivered. Thank you!", o.ID),
		notify.Button{Text: "Rate us", Data: fmt.Sprintf("rate:%d", o.ID)})
	s.Notify.Broadcast(s.Admins.ChatIDs(), fmt.Sprintf("Order #%d delivered", o.ID))
	return nil
}

// ----- Customer: rate -----

// Rate stores the customer's score. Rating again overwrites; no history.
func (s *OrderService) Rate(orderID uint, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.Status != entity.OrderDelivered {
		return ErrOrderNotDelivered
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.Rate(tx, o.ID, rating, comment)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotDelivered
		}
		return nil
	})
}

func (s *OrderService) notifyCustomer(userID uint, text string, buttons ...notify.Button) {
	user, err := s.UserRepo.Get(userID)
	if err != nil {
		return // customer row gone; nothing to notify
	}
	s.Notify.Dispatch(user.ChatID, text, buttons...)
}
