package repository

import (
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD) ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithItems(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"userId"`
	CourierID        *uint     `json:"courierId,omitempty"`
	Status           string    `json:"status"`
	FinalTotalAmount int64     `json:"finalTotalAmount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, user_id, courier_id, status, final_total_amount, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatus(status string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status = ?", status).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListUnassigned() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status = ? AND courier_id IS NULL", entity.OrderPending).
		Order("id").Find(&orders).Error
	return orders, err
}

// CountActive counts the user's pending + with_courier orders for the
// per-user limit check.
func (r *OrderRepository) CountActive(userID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("user_id = ? AND status IN ?", userID,
			[]string{entity.OrderPending, entity.OrderWithCourier}).
		Count(&cnt).Error
	return cnt, err
}

// ---------------- Transition updates ----------------
//
// Every transition sets its status word and timestamps in one UPDATE
// guarded by the current state, so a half-applied transition is never
// observable and a concurrent duplicate loses on RowsAffected.

func (r *OrderRepository) Assign(tx *gorm.DB, orderID, courierID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{"courier_id": courierID, "assigned_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) Accept(tx *gorm.DB, orderID uint, deliveryTime string, at time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{
			"status":        entity.OrderWithCourier,
			"delivery_time": deliveryTime,
			"accepted_at":   at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Deliver only fires for a locked order still with the courier.
func (r *OrderRepository) Deliver(tx *gorm.DB, orderID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND is_price_locked = ?",
			orderID, entity.OrderWithCourier, true).
		Updates(map[string]any{"status": entity.OrderDelivered, "delivered_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdatePrice(tx *gorm.DB, orderID uint, newPrice int64) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND is_price_locked = ?", orderID, false).
		Update("final_total_amount", newPrice)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) LockPrice(tx *gorm.DB, orderID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND is_price_locked = ?", orderID, false).
		Update("is_price_locked", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Rate overwrites any earlier rating; no history is kept.
func (r *OrderRepository) Rate(tx *gorm.DB, orderID uint, rating int, comment string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderDelivered).
		Updates(map[string]any{"rating": rating, "rating_comment": comment})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order items / price history ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) CreatePriceHistory(tx *gorm.DB, h *entity.OrderPriceHistory) error {
	return tx.Create(h).Error
}

func (r *OrderRepository) GetPriceHistory(orderID uint) ([]entity.OrderPriceHistory, error) {
	var rows []entity.OrderPriceHistory
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&rows).Error
	return rows, err
}

// ---------------- Delivered-order queries for finance/stats ----------------

// DeliveredInWindow selects delivered orders whose delivered_at falls in
// the half-open window [start, end); nil bounds are open.
func (r *OrderRepository) DeliveredInWindow(start, end *time.Time) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Where("status = ?", entity.OrderDelivered)
	if start != nil {
		q = q.Where("delivered_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("delivered_at < ?", *end)
	}
	var orders []entity.Order
	err := q.Order("delivered_at").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) DeliveredForCourier(courierID uint, start, end *time.Time) ([]entity.Order, error) {
	q := r.DB.Preload("Items").
		Where("status = ? AND courier_id = ?", entity.OrderDelivered, courierID)
	if start != nil {
		q = q.Where("delivered_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("delivered_at < ?", *end)
	}
	var orders []entity.Order
	err := q.Order("delivered_at").Find(&orders).Error
	return orders, err
}
