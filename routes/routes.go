package routes

import (
	"github.com/azamatp047/shukrona-backend/configs"
	"github.com/azamatp047/shukrona-backend/controllers"
	"github.com/azamatp047/shukrona-backend/middlewares"
	"github.com/azamatp047/shukrona-backend/pkg/notify"
	"github.com/azamatp047/shukrona-backend/repository"
	"github.com/azamatp047/shukrona-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, log *zap.Logger) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	financeRepo := repository.NewFinanceRepository(db)

	// Collaborators
	admins := services.NewAdminChecker(cfg.AdminChatIDs)
	sender := notify.NewTelegram(cfg.BotAPIURL, cfg.BotToken)
	dispatcher := notify.NewDispatcher(sender, log)

	// Services
	userSvc := services.NewUserService(db, userRepo)
	courierSvc := services.NewCourierService(db, courierRepo, orderRepo)
	productSvc := services.NewProductService(db, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, userRepo, courierRepo, productRepo,
		dispatcher, admins, cfg.MaxActiveOrders)
	financeSvc := services.NewFinanceService(db, financeRepo, orderRepo, courierRepo, productRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(cfg, userSvc, courierSvc, admins)
	userCtrl := controllers.NewUserController(userSvc)
	courierCtrl := controllers.NewCourierController(courierSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	financeCtrl := controllers.NewFinanceController(financeSvc)
	adminCtrl := controllers.NewAdminController(db)

	secret := cfg.JWTSecret

	// Public (bot backends call these before a token exists)
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/users", userCtrl.Register)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)

	// Customer
	u := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/rate", orderCtrl.Rate)
		u.GET("/profile/orders", orderCtrl.ListForMe)
	}

	// Courier (courier/admin)
	courier := r.Group("/courier", middlewares.AuthMiddleware(secret, "courier", "admin"))
	{
		courier.PATCH("/orders/:id/accept", orderCtrl.Accept)
		courier.POST("/orders/:id/bonus", orderCtrl.AddBonus)
		courier.PATCH("/orders/:id/price", orderCtrl.UpdatePrice)
		courier.PATCH("/orders/:id/lock", orderCtrl.LockPrice)
		courier.PATCH("/orders/:id/deliver", orderCtrl.Deliver)
		courier.GET("/stats", courierCtrl.MyStats)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/orders", orderCtrl.ListByStatus)
		admin.GET("/orders/unassigned", orderCtrl.Unassigned)
		admin.PATCH("/orders/:id/assign", orderCtrl.Assign)

		admin.GET("/users", userCtrl.List)
		admin.GET("/users/:id", userCtrl.Detail)
		admin.PATCH("/users/:id", userCtrl.Update)
		admin.PATCH("/users/:id/block", userCtrl.Block)
		admin.PATCH("/users/:id/unblock", userCtrl.Unblock)

		admin.POST("/couriers", courierCtrl.Create)
		admin.GET("/couriers", courierCtrl.List)
		admin.GET("/couriers/:id", courierCtrl.Detail)
		admin.PATCH("/couriers/:id", courierCtrl.Update)
		admin.GET("/couriers/:id/stats", courierCtrl.Stats)

		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.PATCH("/products/:id/stock", productCtrl.AddStock)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/finance/stats", financeCtrl.Stats)
		admin.GET("/finance/calculate-salary", financeCtrl.CalculateSalary)
		admin.POST("/finance/pay-salary", financeCtrl.PaySalary)
		admin.GET("/finance/salaries", financeCtrl.ListSalaries)
		admin.DELETE("/finance/salaries/:id", financeCtrl.DeleteSalary)
		admin.POST("/finance/expenses", financeCtrl.CreateExpense)
		admin.GET("/finance/expenses", financeCtrl.ListExpenses)
		admin.DELETE("/finance/expenses/:id", financeCtrl.DeleteExpense)
	}
}
