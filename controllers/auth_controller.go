package controllers

import (
	"github.com/azamatp047/shukrona-backend/configs"
	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"
	"github.com/azamatp047/shukrona-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Cfg      *configs.Config
	Users    *services.UserService
	Couriers *services.CourierService
	Admins   *services.AdminChecker
}

func NewAuthController(cfg *configs.Config, users *services.UserService, couriers *services.CourierService, admins *services.AdminChecker) *AuthController {
	return &AuthController{Cfg: cfg, Users: users, Couriers: couriers, Admins: admins}
}

type LoginReq struct {
	ChatID string `json:"chatId" binding:"required"`
}

// Login exchanges a chat id for a token. The role is resolved here:
// admin list first, then the courier table, then customers. For courier
// tokens the userId claim carries the courier's own id.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var (
		id   uint
		role string
	)
	switch {
	case ac.Admins.IsAdmin(req.ChatID):
		role = "admin"
	default:
		if courier, err := ac.Couriers.GetByChatID(req.ChatID); err == nil {
			id, role = courier.ID, "courier"
			break
		}
		user, err := ac.Users.GetByChatID(req.ChatID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		id, role = user.ID, "customer"
	}

	token, err := utils.GenerateToken(id, role, req.ChatID, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "role": role})
}
