package services

import (
	"testing"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfitReport_Identity(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	env.seedUser(t, "u2")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)
	somsa := env.seedProduct(t, "Somsa", 4000, 7000, 100)

	env.deliveredOrder(t, "u1", courier, osh.ID, 2)   // revenue 30000, cogs 20000
	env.deliveredOrder(t, "u2", courier, somsa.ID, 3) // revenue 21000, cogs 12000

	_, err := env.finance.PaySalary(courier.ID, 5000,
		date(2026, 8, 1), date(2026, 8, 31), "august")
	require.NoError(t, err)
	_, err = env.finance.CreateExpense(2000, "rent")
	require.NoError(t, err)

	rep, err := env.finance.Report(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(51000), rep.TotalRevenue)
	assert.Equal(t, int64(32000), rep.TotalCOGS)
	assert.Equal(t, int64(19000), rep.GrossProfit)
	assert.Equal(t, int64(5000), rep.TotalSalaries)
	assert.Equal(t, int64(2000), rep.TotalExpenses)
	assert.Equal(t, rep.GrossProfit-rep.TotalSalaries-rep.TotalExpenses, rep.NetProfit)
	assert.Equal(t, int64(12000), rep.NetProfit)
	assert.Equal(t, 5, rep.SoldItemsCount)
}

func TestProfitReport_PerProductBreakdown(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	env.deliveredOrder(t, "u1", courier, osh.ID, 2)

	rep, err := env.finance.Report(nil, nil)
	require.NoError(t, err)
	require.Len(t, rep.Products, 1)

	pp := rep.Products[0]
	assert.Equal(t, osh.ID, pp.ProductID)
	assert.Equal(t, "Osh", pp.ProductName)
	assert.Equal(t, 2, pp.SoldQuantity)
	assert.Equal(t, int64(30000), pp.TotalRevenue)
	assert.Equal(t, int64(20000), pp.TotalCOGS)
	assert.Equal(t, int64(10000), pp.GrossProfit)
	assert.InDelta(t, 33.33, pp.MarginPct, 0.001)
}

func TestProfitReport_BonusItemsContributeNothingToRevenue(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)
	gift := env.seedProduct(t, "Non", 2000, 4000, 10)

	id := env.placeOrder(t, "u1", osh.ID, 1)
	require.NoError(t, env.orders.Assign(id, courier.ID))
	require.NoError(t, env.orders.Accept(id, courier.ID, "30 min"))
	require.NoError(t, env.orders.AddBonusItems(id, courier.ID,
		[]OrderItemIn{{ProductID: gift.ID, Quantity: 2}}))
	require.NoError(t, env.orders.LockPrice(id, courier.ID))
	require.NoError(t, env.orders.Deliver(id, courier.ID))

	rep, err := env.finance.Report(nil, nil)
	require.NoError(t, err)

	// The gift line shows up as quantity but with zero money.
	assert.Equal(t, int64(15000), rep.TotalRevenue)
	assert.Equal(t, int64(10000), rep.TotalCOGS)
	assert.Equal(t, 3, rep.SoldItemsCount)

	for _, pp := range rep.Products {
		if pp.ProductID == gift.ID {
			assert.Zero(t, pp.TotalRevenue)
			assert.Zero(t, pp.TotalCOGS)
			assert.Zero(t, pp.MarginPct)
			assert.Equal(t, 2, pp.SoldQuantity)
		}
	}
}

func TestProfitReport_EmptyWindowAllZero(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)
	env.deliveredOrder(t, "u1", courier, osh.ID, 1)

	// A window far in the past sees nothing.
	start := date(2000, 1, 1)
	end := date(2000, 2, 1)
	rep, err := env.finance.Report(&start, &end)
	require.NoError(t, err)

	assert.Zero(t, rep.TotalRevenue)
	assert.Zero(t, rep.TotalCOGS)
	assert.Zero(t, rep.TotalSalaries)
	assert.Zero(t, rep.TotalExpenses)
	assert.Zero(t, rep.NetProfit)
	assert.Empty(t, rep.Products)
}

func TestProfitReport_WindowIsHalfOpen(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)
	id := env.deliveredOrder(t, "u1", courier, osh.ID, 1)

	// Pin delivered_at so the window edges are deterministic.
	deliveredAt := date(2026, 3, 15)
	require.NoError(t, env.db.Model(&entity.Order{}).
		Where("id = ?", id).Update("delivered_at", deliveredAt).Error)

	in1, in2 := date(2026, 3, 15), date(2026, 3, 16)
	rep, err := env.finance.Report(&in1, &in2)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), rep.TotalRevenue)

	// delivered_at == end is excluded.
	out1, out2 := date(2026, 3, 1), date(2026, 3, 15)
	rep, err = env.finance.Report(&out1, &out2)
	require.NoError(t, err)
	assert.Zero(t, rep.TotalRevenue)
}

func TestCalculateSalary_UsesFinalAmounts(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	id := env.placeOrder(t, "u1", osh.ID, 2)
	require.NoError(t, env.orders.Assign(id, courier.ID))
	require.NoError(t, env.orders.Accept(id, courier.ID, "30 min"))
	require.NoError(t, env.orders.UpdatePrice(id, courier.ID, 25000))
	require.NoError(t, env.orders.LockPrice(id, courier.ID))
	require.NoError(t, env.orders.Deliver(id, courier.ID))

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	calc, err := env.finance.CalculateSalary(courier.ID, start, end)
	require.NoError(t, err)

	// The adjusted price counts, not the 30000 item total.
	assert.Equal(t, int64(25000), calc.TotalSales)
	assert.Equal(t, 1, calc.OrdersCount)
	assert.Equal(t, 2, calc.ItemsCount)
	assert.Equal(t, courier.Name, calc.CourierName)

	// Nothing was persisted by the preview.
	payments, err := env.finance.ListSalaryPayments(nil)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPaySalary_VerbatimAmount(t *testing.T) {
	env := newTestEnv(t)
	courier := env.seedCourier(t, "c1")

	// No delivered orders at all; the amount is stored as given anyway.
	payment, err := env.finance.PaySalary(courier.ID, 999999,
		date(2026, 8, 1), date(2026, 8, 31), "manual override")
	require.NoError(t, err)
	assert.Equal(t, int64(999999), payment.Amount)
	assert.Equal(t, "manual override", payment.Note)
	assert.False(t, payment.PaidAt.IsZero())

	_, err = env.finance.PaySalary(9999, 100, date(2026, 8, 1), date(2026, 8, 31), "")
	assert.ErrorIs(t, err, ErrCourierNotFound)
}

func TestDeleteSalaryAndExpense(t *testing.T) {
	env := newTestEnv(t)
	courier := env.seedCourier(t, "c1")

	payment, err := env.finance.PaySalary(courier.ID, 1000,
		date(2026, 8, 1), date(2026, 8, 31), "")
	require.NoError(t, err)
	expense, err := env.finance.CreateExpense(500, "fuel")
	require.NoError(t, err)

	require.NoError(t, env.finance.DeleteSalaryPayment(payment.ID))
	require.NoError(t, env.finance.DeleteExpense(expense.ID))

	assert.ErrorIs(t, env.finance.DeleteSalaryPayment(payment.ID), ErrPaymentNotFound)
	assert.ErrorIs(t, env.finance.DeleteExpense(expense.ID), ErrExpenseNotFound)

	payments, err := env.finance.ListSalaryPayments(nil)
	require.NoError(t, err)
	assert.Empty(t, payments)
	expenses, err := env.finance.ListExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
