package repository

import (
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"gorm.io/gorm"
)

type FinanceRepository struct {
	DB *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{DB: db}
}

// ---------------- Salary payments ----------------

func (r *FinanceRepository) CreateSalaryPayment(tx *gorm.DB, p *entity.SalaryPayment) error {
	return tx.Create(p).Error
}

func (r *FinanceRepository) ListSalaryPayments(courierID *uint) ([]entity.SalaryPayment, error) {
	q := r.DB.Model(&entity.SalaryPayment{})
	if courierID != nil && *courierID != 0 {
		q = q.Where("courier_id = ?", *courierID)
	}
	var payments []entity.SalaryPayment
	err := q.Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

func (r *FinanceRepository) DeleteSalaryPayment(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Unscoped().Delete(&entity.SalaryPayment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SumSalaries totals payments whose paid_at falls in [start, end).
func (r *FinanceRepository) SumSalaries(start, end *time.Time) (int64, error) {
	q := r.DB.Model(&entity.SalaryPayment{})
	if start != nil {
		q = q.Where("paid_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("paid_at < ?", *end)
	}
	var total *int64
	if err := q.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// ---------------- Expenses ----------------

func (r *FinanceRepository) CreateExpense(tx *gorm.DB, e *entity.Expense) error {
	return tx.Create(e).Error
}

func (r *FinanceRepository) ListExpenses() ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.DB.Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *FinanceRepository) DeleteExpense(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Unscoped().Delete(&entity.Expense{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *FinanceRepository) SumExpenses(start, end *time.Time) (int64, error) {
	q := r.DB.Model(&entity.Expense{})
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at < ?", *end)
	}
	var total *int64
	if err := q.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
