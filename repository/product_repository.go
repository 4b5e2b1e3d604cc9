package repository

import (
	"github.com/azamatp047/shukrona-backend/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(tx *gorm.DB, p *entity.Product) error {
	return tx.Create(p).Error
}

// Get fetches a product regardless of lifecycle status — order items
// must stay resolvable after a soft delete.
func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("status = ?", entity.ProductActive).Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Save(tx *gorm.DB, p *entity.Product) error {
	return tx.Save(p).Error
}

// DecrementStock takes stock without any floor. Order creation runs
// through here; stock legally goes negative when oversold.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", qty)).Error
}

// DecrementStockGuard is the strict variant for bonus items: it refuses
// to go below zero. Returns false when stock was insufficient.
func (r *ProductRepository) DecrementStockGuard(tx *gorm.DB, productID uint, qty int) (bool, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProductRepository) AddStock(tx *gorm.DB, productID uint, qty int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

// SoftDelete flips the lifecycle status; the row itself stays.
func (r *ProductRepository) SoftDelete(tx *gorm.DB, productID uint) (bool, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND status = ?", productID, entity.ProductActive).
		Update("status", entity.ProductDeleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
