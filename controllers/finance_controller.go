package controllers

import (
	"time"

	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	Finance *services.FinanceService
}

func NewFinanceController(finance *services.FinanceService) *FinanceController {
	return &FinanceController{Finance: finance}
}

// GET /admin/finance/stats?start=&end=
func (fc *FinanceController) Stats(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}
	report, err := fc.Finance.Report(start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /admin/finance/calculate-salary?courierId=&start=&end=
func (fc *FinanceController) CalculateSalary(c *gin.Context) {
	var q struct {
		CourierID uint   `form:"courierId" binding:"required"`
		Start     string `form:"start" binding:"required"`
		End       string `form:"end" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	start, err := time.Parse("2006-01-02", q.Start)
	if err != nil {
		resp.BadRequest(c, "start must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", q.End)
	if err != nil {
		resp.BadRequest(c, "end must be YYYY-MM-DD")
		return
	}
	end = end.Add(24 * time.Hour) // end date is inclusive

	calc, err := fc.Finance.CalculateSalary(q.CourierID, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, calc)
}

// POST /admin/finance/pay-salary
func (fc *FinanceController) PaySalary(c *gin.Context) {
	var req struct {
		CourierID uint   `json:"courierId" binding:"required"`
		Amount    int64  `json:"amount" binding:"required,min=1"`
		Start     string `json:"startDate" binding:"required"`
		End       string `json:"endDate" binding:"required"`
		Note      string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		resp.BadRequest(c, "startDate must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		resp.BadRequest(c, "endDate must be YYYY-MM-DD")
		return
	}

	payment, err := fc.Finance.PaySalary(req.CourierID, req.Amount, start, end, req.Note)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /admin/finance/salaries?courierId=
func (fc *FinanceController) ListSalaries(c *gin.Context) {
	var courierID *uint
	var q struct {
		CourierID uint `form:"courierId"`
	}
	if err := c.ShouldBindQuery(&q); err == nil && q.CourierID != 0 {
		courierID = &q.CourierID
	}
	payments, err := fc.Finance.ListSalaryPayments(courierID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}

// DELETE /admin/finance/salaries/:id
func (fc *FinanceController) DeleteSalary(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := fc.Finance.DeleteSalaryPayment(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/finance/expenses
func (fc *FinanceController) CreateExpense(c *gin.Context) {
	var req struct {
		Amount int64  `json:"amount" binding:"required,min=1"`
		Note   string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	expense, err := fc.Finance.CreateExpense(req.Amount, req.Note)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, expense)
}

// GET /admin/finance/expenses
func (fc *FinanceController) ListExpenses(c *gin.Context) {
	expenses, err := fc.Finance.ListExpenses()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": expenses})
}

// DELETE /admin/finance/expenses/:id
func (fc *FinanceController) DeleteExpense(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := fc.Finance.DeleteExpense(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
