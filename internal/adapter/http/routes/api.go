package routes

import (
	"recibozap/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWhatsApp  = "/whatsapp"
	PathReceipts  = "/receipts"
	PathUsers     = "/users"
	PathAnalytics = "/analytics"
)

func addAPIRoutes(
	rg *gin.RouterGroup,
	whatsappHandler *handlers.WhatsAppHandler,
	receiptHandler *handlers.ReceiptHandler,
	userHandler *handlers.UserHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	whatsapp := rg.Group(PathWhatsApp)
	{
		whatsapp.POST("/webhook", whatsappHandler.Webhook)
		whatsapp.POST("/send", whatsappHandler.Send)
		whatsapp.GET("/sessions", whatsappHandler.Sessions)
	}

	receipts := rg.Group(PathReceipts)
	{
		receipts.POST("/generate", receiptHandler.Generate)
		receipts.GET("/download/:receiptId", receiptHandler.Download)
		receipts.GET("", receiptHandler.List)
		receipts.PATCH("/:receiptId/void", receiptHandler.Void)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:phone/stats", userHandler.GetStats)
		users.PATCH("/:phone/subscription", userHandler.UpdateSubscription)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/:phone/dashboard", analyticsHandler.Dashboard)
		analytics.GET("/:phone/report", analyticsHandler.Report)
	}
}
