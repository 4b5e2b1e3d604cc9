package controllers

import (
	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// POST /users — the bot registers a customer on /start
func (uc *UserController) Register(c *gin.Context) {
	var req services.RegisterUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := uc.Users.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /admin/users
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// GET /admin/users/:id
func (uc *UserController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := uc.Users.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /admin/users/:id
func (uc *UserController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := uc.Users.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /admin/users/:id/block
func (uc *UserController) Block(c *gin.Context) {
	uc.setStatus(c, entity.UserBlocked)
}

// PATCH /admin/users/:id/unblock
func (uc *UserController) Unblock(c *gin.Context) {
	uc.setStatus(c, entity.UserActive)
}

func (uc *UserController) setStatus(c *gin.Context, status string) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := uc.Users.SetStatus(id, status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
