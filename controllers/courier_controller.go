package controllers

import (
	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"
	"github.com/azamatp047/shukrona-backend/utils"

	"github.com/gin-gonic/gin"
)

type CourierController struct {
	Couriers *services.CourierService
}

func NewCourierController(couriers *services.CourierService) *CourierController {
	return &CourierController{Couriers: couriers}
}

// POST /admin/couriers
func (cc *CourierController) Create(c *gin.Context) {
	var req services.CreateCourierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	courier, err := cc.Couriers.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, courier)
}

// GET /admin/couriers
func (cc *CourierController) List(c *gin.Context) {
	couriers, err := cc.Couriers.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": couriers})
}

// GET /admin/couriers/:id
func (cc *CourierController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	courier, err := cc.Couriers.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, courier)
}

// PATCH /admin/couriers/:id
func (cc *CourierController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateCourierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	courier, err := cc.Couriers.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, courier)
}

// GET /admin/couriers/:id/stats?start=&end=
func (cc *CourierController) Stats(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}
	stats, err := cc.Couriers.Stats(id, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /courier/stats — the courier's own numbers
func (cc *CourierController) MyStats(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}
	stats, err := cc.Couriers.Stats(utils.CurrentUserID(c), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}
