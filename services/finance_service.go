package services

import (
	"errors"
	"math"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/repository"

	"gorm.io/gorm"
)

type FinanceService struct {
	DB          *gorm.DB
	Repo        *repository.FinanceRepository
	OrderRepo   *repository.OrderRepository
	CourierRepo *repository.CourierRepository
	ProductRepo *repository.ProductRepository
}

func NewFinanceService(
	db *gorm.DB,
	repo *repository.FinanceRepository,
	orderRepo *repository.OrderRepository,
	courierRepo *repository.CourierRepository,
	productRepo *repository.ProductRepository,
) *FinanceService {
	return &FinanceService{
		DB:          db,
		Repo:        repo,
		OrderRepo:   orderRepo,
		CourierRepo: courierRepo,
		ProductRepo: productRepo,
	}
}

// ----- Profit report -----

type ProductPerformance struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	SoldQuantity int     `json:"soldQuantity"`
	TotalRevenue int64   `json:"totalRevenue"`
	TotalCOGS    int64   `json:"totalCogs"`
	GrossProfit  int64   `json:"grossProfit"`
	MarginPct    float64 `json:"marginPercent"`
}

type ProfitReport struct {
	TotalRevenue   int64                `json:"totalRevenue"`
	TotalCOGS      int64                `json:"totalCogs"`
	GrossProfit    int64                `json:"grossProfit"`
	TotalSalaries  int64                `json:"totalSalaries"`
	TotalExpenses  int64                `json:"totalExpenses"`
	NetProfit      int64                `json:"netProfit"`
	SoldItemsCount int                  `json:"soldItemsCount"`
	Products       []ProductPerformance `json:"productsBreakdown"`
}

// Report aggregates delivered orders over [start, end). Revenue and COGS
// come from item snapshots, so later catalog edits never shift old
// reports. Bonus lines carry zero prices and drop out on their own.
func (s *FinanceService) Report(start, end *time.Time) (*ProfitReport, error) {
	orders, err := s.OrderRepo.DeliveredInWindow(start, end)
	if err != nil {
		return nil, err
	}

	rep := &ProfitReport{}
	type acc struct {
		qty     int
		revenue int64
		cogs    int64
	}
	perProduct := map[uint]*acc{}

	for _, o := range orders {
		for _, it := range o.Items {
			revenue := it.SellPrice * int64(it.Quantity)
			cogs := it.BuyPrice * int64(it.Quantity)
			rep.TotalRevenue += revenue
			rep.TotalCOGS += cogs
			rep.SoldItemsCount += it.Quantity

			a, ok := perProduct[it.ProductID]
			if !ok {
				a = &acc{}
				perProduct[it.ProductID] = a
			}
			a.qty += it.Quantity
			a.revenue += revenue
			a.cogs += cogs
		}
	}

	rep.Products = make([]ProductPerformance, 0, len(perProduct))
	for pid, a := range perProduct {
		name := "deleted product"
		if p, err := s.ProductRepo.Get(pid); err == nil {
			name = p.Name
		}
		gross := a.revenue - a.cogs
		margin := 0.0
		if a.revenue > 0 {
			margin = math.Round(float64(gross)/float64(a.revenue)*100*100) / 100
		}
		rep.Products = append(rep.Products, ProductPerformance{
			ProductID:    pid,
			ProductName:  name,
			SoldQuantity: a.qty,
			TotalRevenue: a.revenue,
			TotalCOGS:    a.cogs,
			GrossProfit:  gross,
			MarginPct:    margin,
		})
	}

	if rep.TotalSalaries, err = s.Repo.SumSalaries(start, end); err != nil {
		return nil, err
	}
	if rep.TotalExpenses, err = s.Repo.SumExpenses(start, end); err != nil {
		return nil, err
	}

	rep.GrossProfit = rep.TotalRevenue - rep.TotalCOGS
	rep.NetProfit = rep.GrossProfit - rep.TotalSalaries - rep.TotalExpenses
	return rep, nil
}

// ----- Salary -----

type SalaryCalculation struct {
	CourierID   uint      `json:"courierId"`
	CourierName string    `json:"courierName"`
	TotalSales  int64     `json:"totalSales"`
	OrdersCount int       `json:"ordersCount"`
	ItemsCount  int       `json:"itemsCount"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// CalculateSalary is a read-only preview; nothing is persisted. It sums
// the locked/adjusted final amounts, not the raw item totals.
func (s *FinanceService) CalculateSalary(courierID uint, start, end time.Time) (*SalaryCalculation, error) {
	courier, err := s.getCourier(courierID)
	if err != nil {
		return nil, err
	}

	orders, err := s.OrderRepo.DeliveredForCourier(courierID, &start, &end)
	if err != nil {
		return nil, err
	}

	calc := &SalaryCalculation{
		CourierID:   courier.ID,
		CourierName: courier.Name,
		StartDate:   start,
		EndDate:     end,
	}
	for _, o := range orders {
		calc.TotalSales += o.FinalTotalAmount
		calc.OrdersCount++
		for _, it := range o.Items {
			calc.ItemsCount += it.Quantity
		}
	}
	return calc, nil
}

// PaySalary records the amount as given. It is intentionally not derived
// from CalculateSalary so the admin can override either way.
func (s *FinanceService) PaySalary(courierID uint, amount int64, start, end time.Time, note string) (*entity.SalaryPayment, error) {
	if _, err := s.getCourier(courierID); err != nil {
		return nil, err
	}

	payment := &entity.SalaryPayment{
		CourierID: courierID,
		Amount:    amount,
		StartDate: start,
		EndDate:   end,
		PaidAt:    time.Now(),
		Note:      note,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateSalaryPayment(tx, payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *FinanceService) ListSalaryPayments(courierID *uint) ([]entity.SalaryPayment, error) {
	return s.Repo.ListSalaryPayments(courierID)
}

func (s *FinanceService) DeleteSalaryPayment(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.DeleteSalaryPayment(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPaymentNotFound
		}
		return nil
	})
}

// ----- Expenses -----

func (s *FinanceService) CreateExpense(amount int64, note string) (*entity.Expense, error) {
	expense := &entity.Expense{Amount: amount, Note: note}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateExpense(tx, expense)
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *FinanceService) ListExpenses() ([]entity.Expense, error) {
	return s.Repo.ListExpenses()
}

func (s *FinanceService) DeleteExpense(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.DeleteExpense(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExpenseNotFound
		}
		return nil
	})
}

func (s *FinanceService) getCourier(id uint) (*entity.Courier, error) {
	c, err := s.CourierRepo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, err
	}
	return c, nil
}
