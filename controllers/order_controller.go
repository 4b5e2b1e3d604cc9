package controllers

import (
	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"
	"github.com/azamatp047/shukrona-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ===== Create =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ChatID == "" {
		req.ChatID = utils.CurrentChatID(c)
	}

	out, err := oc.Orders.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// ===== Reads =====

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	detail, err := oc.Orders.Detail(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	items, err := oc.Orders.ListForUser(utils.CurrentChatID(c), 50)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/orders?status=pending
func (oc *OrderController) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	orders, err := oc.Orders.ListByStatus(status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/orders/unassigned
func (oc *OrderController) Unassigned(c *gin.Context) {
	orders, err := oc.Orders.ListUnassigned()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// ===== Transitions =====

// PATCH /admin/orders/:id/assign
func (oc *OrderController) Assign(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		CourierID uint `json:"courierId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.Assign(id, req.CourierID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": true})
}

// PATCH /courier/orders/:id/accept
func (oc *OrderController) Accept(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		DeliveryTime string `json:"deliveryTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.Accept(id, utils.CurrentUserID(c), req.DeliveryTime); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"accepted": true})
}

// POST /courier/orders/:id/bonus
func (oc *OrderController) AddBonus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Items []services.OrderItemIn `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.AddBonusItems(id, utils.CurrentUserID(c), req.Items); err != nil {
		writeServiceError(c, err)
		return
	}

	detail, err := oc.Orders.Detail(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /courier/orders/:id/price
func (oc *OrderController) UpdatePrice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		NewPrice int64 `json:"newPrice" binding:"required,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.UpdatePrice(id, utils.CurrentUserID(c), req.NewPrice); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /courier/orders/:id/lock
func (oc *OrderController) LockPrice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := oc.Orders.LockPrice(id, utils.CurrentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"locked": true})
}

// PATCH /courier/orders/:id/deliver
func (oc *OrderController) Deliver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := oc.Orders.Deliver(id, utils.CurrentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"delivered": true})
}

// POST /orders/:id/rate
func (oc *OrderController) Rate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.Rate(id, req.Rating, req.Comment); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"rated": true})
}
