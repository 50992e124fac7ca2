package router

import (
	"github.com/javierportillar/saviaInventory-sub001/internal/config"
	"github.com/javierportillar/saviaInventory-sub001/internal/handler"
	"github.com/javierportillar/saviaInventory-sub001/internal/ledger"
	"github.com/javierportillar/saviaInventory-sub001/internal/middleware"
	"github.com/javierportillar/saviaInventory-sub001/internal/models"
	"github.com/javierportillar/saviaInventory-sub001/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// registerValidations adds the custom binding rules used in request tags.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return models.KnownPaymentMethod(fl.Field().String())
		})
	}
}

// SetupRouter wires the Gin engine: middleware, handlers, routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	registerValidations()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	st := store.New(db)
	svc := ledger.NewExpenseService(st, config.GetLogger())

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	itemHandler := handler.NewItemHandler(db)
	protected.GET("/items", itemHandler.ListItems)
	protected.POST("/items", itemHandler.CreateItem)
	protected.PUT("/items/:id/stock", itemHandler.SetStock)

	expenseHandler := handler.NewExpenseHandler(svc, st)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	orderHandler := handler.NewOrderHandler(db)
	protected.GET("/orders", orderHandler.ListOrders)
	protected.POST("/orders", orderHandler.CreateOrder)

	balanceHandler := handler.NewBalanceHandler(st)
	protected.GET("/balances", balanceHandler.GetBalances)

	exportHandler := handler.NewExportHandler(st)
	protected.GET("/export/balances.csv", exportHandler.ExportCSV)
	protected.GET("/export/balances.xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(db, cfg.Backup.Dir)
	protected.POST("/backups", backupHandler.CreateBackup)
	protected.GET("/backups", backupHandler.ListBackups)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
