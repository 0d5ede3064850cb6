package router

import (
	"github.com/gin-gonic/gin"

	"powerwidget/internal/feature/prices/transport/handler"
)

func NewRouter(prices *handler.PriceHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/summary", prices.GetSummaryHandler)
		v1.GET("/prices", prices.GetPricesHandler)
	}

	return r
}
