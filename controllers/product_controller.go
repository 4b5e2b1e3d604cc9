package controllers

import (
	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GET /products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Products.ListActive()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	product, err := pc.Products.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /admin/products
func (pc *ProductController) Create(c *gin.Context) {
	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.Products.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /admin/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.Products.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, product)
}

// PATCH /admin/products/:id/stock
func (pc *ProductController) AddStock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.Products.AddStock(id, req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /admin/products/:id — soft delete only
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := pc.Products.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
