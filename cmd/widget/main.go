package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"powerwidget/internal/app/di"
	"powerwidget/internal/feature/prices/domain"
	"powerwidget/internal/feature/prices/usecase"
	"powerwidget/internal/platform/render"
)

// 1回のウィジェット更新: キャッシュ越しに価格を取得し、集計してチャートを出力して終了する。
// 定期実行はOS側のスケジューラに任せる。
func main() {
	source := di.NewPriceSource()
	store := di.NewCacheStore()
	svc := usecase.NewPriceService(source, store, usecase.DefaultMaxAge)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sum, err := svc.Summary(ctx, time.Now().UTC(), usecase.DefaultHorizon, usecase.DefaultWindowLen)
	if errors.Is(err, domain.ErrInsufficientData) {
		fmt.Println("not enough data")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(render.Title(sum))
	fmt.Print(render.Chart(sum))
}
