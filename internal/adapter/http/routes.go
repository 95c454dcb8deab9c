package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/handlers"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
)

type Handlers struct {
	Health           *handlers.HealthHandler
	Task             *handlers.TaskHandler
	Invoice          *handlers.InvoiceHandler
	Customer         *handlers.CustomerHandler
	Worker           *handlers.WorkerHandler
	LineItemTemplate *handlers.LineItemTemplateHandler
	Photo            *handlers.PhotoHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.GET("/tasks/:id", h.Task.GetTask)
		api.PATCH("/tasks/:id", h.Task.UpdateTask)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)
		api.POST("/tasks/:id/events", h.Task.AddTaskEvent)
		api.GET("/tasks/:id/history", h.Task.GetTaskHistory)

		api.GET("/invoices", h.Invoice.ListInvoices)
		api.POST("/invoices", h.Invoice.CreateInvoice)
		api.GET("/invoices/:id", h.Invoice.GetInvoice)
		api.PATCH("/invoices/:id", h.Invoice.UpdateInvoice)
		api.DELETE("/invoices/:id", h.Invoice.DeleteInvoice)

		api.GET("/customers", h.Customer.ListCustomers)
		api.POST("/customers", h.Customer.CreateCustomer)
		api.GET("/customers/:id", h.Customer.GetCustomer)
		api.PUT("/customers/:id", h.Customer.UpdateCustomer)
		api.DELETE("/customers/:id", h.Customer.DeleteCustomer)

		api.GET("/workers", h.Worker.ListWorkers)
		api.POST("/workers", h.Worker.CreateWorker)
		api.GET("/workers/:id", h.Worker.GetWorker)
		api.PUT("/workers/:id", h.Worker.UpdateWorker)
		api.DELETE("/workers/:id", h.Worker.DeleteWorker)

		api.GET("/line-item-templates", h.LineItemTemplate.ListTemplates)
		api.POST("/line-item-templates", h.LineItemTemplate.CreateTemplate)
		api.GET("/line-item-templates/:id", h.LineItemTemplate.GetTemplate)
		api.PUT("/line-item-templates/:id", h.LineItemTemplate.UpdateTemplate)
		api.DELETE("/line-item-templates/:id", h.LineItemTemplate.DeleteTemplate)

		api.POST("/photos", h.Photo.UploadPhotos)
		api.GET("/photos", h.Photo.ListPhotos)
		api.GET("/photos/:id", h.Photo.GetPhoto)
	}
}
