package router

import (
	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/router/extension"
	"github.com/cloudkitchen/cloudkitchen/router/middlewares"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/ws"
)

// Handlers APIハンドラ
type Handlers struct {
	Repo     repository.Repository
	WS       *ws.Streamer
	Hub      *hub.Hub
	Presence *presence.Tracker
	Logger   *zap.Logger

	Version  string
	Revision string
}

// Config ルーター設定
type Config struct {
	// DevMode 開発モードかどうか
	DevMode bool
	// AccessLogging アクセスログを出力するかどうか
	AccessLogging bool
}

// Setup APIルーティングを行います
func Setup(e *echo.Echo, h *Handlers, c Config) {
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(h.Logger)

	e.Use(middlewares.Recovery(h.Logger))
	e.Use(middlewares.RequestCounter())
	if c.AccessLogging {
		e.Use(middlewares.AccessLogging(h.Logger.Named("access_log"), c.DevMode))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	{
		api.GET("/health", h.GetHealth)
		api.GET("/ws", echo.WrapHandler(h.WS))

		apiFood := api.Group("/food")
		{
			apiFood.GET("", h.GetFoods)
			apiFood.POST("", h.CreateFood)
			apiFoodFID := apiFood.Group("/:foodID")
			{
				apiFoodFID.GET("", h.GetFood)
				apiFoodFID.PUT("", h.UpdateFood)
				apiFoodFID.DELETE("", h.DeleteFood)
			}
		}

		apiOrders := api.Group("/orders")
		{
			apiOrders.GET("", h.GetOrders)
			apiOrders.POST("", h.CreateOrder)
			apiOrders.GET("/user/:userID", h.GetUserOrders)
			apiOrdersOID := apiOrders.Group("/:orderID")
			{
				apiOrdersOID.GET("", h.GetOrder)
				apiOrdersOID.PATCH("/status", h.UpdateOrderStatus)
				apiOrdersOID.DELETE("", h.DeleteOrder)
			}
		}

		apiKitchen := api.Group("/kitchen")
		{
			apiKitchen.GET("/status", h.GetKitchenStatus)
			apiKitchen.PUT("/status", h.PutKitchenStatus)
		}

		apiStats := api.Group("/stats")
		{
			apiStats.GET("/today", h.GetTodayStats)
		}
	}
}

// GetHealth GET /api/health
func (h *Handlers) GetHealth(c echo.Context) error {
	return c.JSON(200, echo.Map{
		"status":   "OK",
		"version":  h.Version,
		"revision": h.Revision,
	})
}
