package main

import (
	"log"
	"os"

	"powerwidget/internal/app/di"
	"powerwidget/internal/app/router"
	priceshandler "powerwidget/internal/feature/prices/transport/handler"
	"powerwidget/internal/feature/prices/usecase"
)

func main() {
	// 価格プロバイダーとキャッシュストア
	source := di.NewPriceSource()
	store := di.NewCacheStore()

	// Usecase
	priceSvc := usecase.NewPriceService(source, store, usecase.DefaultMaxAge)

	// Handler
	pricesH := priceshandler.NewPriceHandler(priceSvc)

	// ルータ生成
	router := router.NewRouter(pricesH)

	if os.Getenv("SPOT_API_TOKEN") == "" {
		log.Println("[WARN] SPOT_API_TOKEN is not set. Provider requests may be rejected.")
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
