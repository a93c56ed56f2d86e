package routes

import (
	"pintura_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices   = "/servicos"
	PathExpenses   = "/despesas"
	PathCategories = "/categorias"
	PathReports    = "/relatorios"
	PathPayments   = "/pagamentos"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	serviceHandler *handlers.ServiceHandler,
	expenseHandler *handlers.ExpenseHandler,
	categoryHandler *handlers.CategoryHandler,
	reportHandler *handlers.ReportHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PATCH("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.GET("/:id", expenseHandler.GetExpense)
		expenses.PATCH("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	categories := rg.Group(PathCategories)
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", categoryHandler.CreateCategory)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/resumo", reportHandler.GetSummary)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:servico_id", paymentHandler.CreatePaymentByServiceID)
		payments.GET("/:servico_id", paymentHandler.GetPaymentByServiceID)
	}
}
