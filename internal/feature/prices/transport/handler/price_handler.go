// Package handler はprices featureのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"powerwidget/internal/feature/prices/domain"
	"powerwidget/internal/feature/prices/domain/entity"
	"powerwidget/internal/feature/prices/transport/http/dto"
	"powerwidget/internal/platform/render"
)

// PricesUsecase は価格集計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	Summary(ctx context.Context, now time.Time, horizon time.Duration, windowLen int) (entity.Summary, error)
	Prices(ctx context.Context, now time.Time, horizon time.Duration) ([]entity.PriceSample, error)
}

// PriceHandler は価格データのHTTPリクエストを処理します。
type PriceHandler struct {
	uc PricesUsecase
}

// NewPriceHandler は指定されたusecaseでPriceHandlerの新しいインスタンスを生成します。
func NewPriceHandler(uc PricesUsecase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// GetSummaryHandler は集計結果をJSONで返します。
//
// エンドポイント例:
// GET /v1/summary?hours=12&window=4
func (h *PriceHandler) GetSummaryHandler(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "12"))
	window, _ := strconv.Atoi(c.DefaultQuery("window", "4"))

	// コアには時計を持ち込まない。nowはこのエッジでだけ読む。
	now := time.Now().UTC()

	sum, err := h.uc.Summary(c.Request.Context(), now, time.Duration(hours)*time.Hour, window)
	if errors.Is(err, domain.ErrInsufficientData) {
		// データ不足は「表示できる状態」のひとつなので200で返す
		c.JSON(http.StatusOK, dto.SummaryResponse{Status: "insufficient_data"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := dto.SummaryResponse{
		Status:   "ok",
		Title:    render.Title(sum),
		Min:      sum.Min,
		Max:      sum.Max,
		Baseline: sum.Baseline,
		Series:   toSeriesResponse(sum.Series),
	}
	if sum.Window != nil {
		resp.Window = &dto.WindowResponse{
			StartIndex:  sum.Window.StartIndex,
			Length:      sum.Window.Length,
			HoursOffset: sum.Window.HoursOffset,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetPricesHandler は絞り込み済みの価格列をJSONで返します。
//
// エンドポイント例:
// GET /v1/prices?hours=12
func (h *PriceHandler) GetPricesHandler(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "12"))
	now := time.Now().UTC()

	samples, err := h.uc.Prices(c.Request.Context(), now, time.Duration(hours)*time.Hour)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toSeriesResponse(samples))
}

func toSeriesResponse(samples []entity.PriceSample) []dto.PriceResponse {
	out := make([]dto.PriceResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, dto.PriceResponse{
			From:  s.From.UTC().Format(time.RFC3339),
			Till:  s.Till.UTC().Format(time.RFC3339),
			Price: s.Price,
		})
	}
	return out
}
