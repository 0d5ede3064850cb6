package usecase

import (
	"context"
	"time"

	"powerwidget/internal/feature/prices/domain/entity"
)

const (
	// DefaultCacheKey はデプロイごとに1つだけ使うキャッシュスロットのキーです。
	DefaultCacheKey = "spot_prices"
	// DefaultMaxAge はキャッシュを再取得せずに使い続けられる最大の経過時間です。
	DefaultMaxAge = 2 * time.Hour
)

// PriceSource は価格プロバイダーの読み取りレイヤーを抽象化します。
type PriceSource interface {
	// FetchPrices はプロバイダーから直近の時間別価格を取得します。
	FetchPrices(ctx context.Context) ([]entity.PriceSample, error)
}

// PriceService は「キャッシュ越しの取得 → 絞り込み → 集計」をひとまとめにした
// ユースケースです。now は常に呼び出し元から渡し、内部でシステム時計は読みません。
type PriceService struct {
	source PriceSource
	cache  *PriceCache

	cacheKey string
	maxAge   time.Duration
}

// NewPriceService はPriceServiceの新しいインスタンスを生成します。
// maxAge が0以下の場合はDefaultMaxAgeを使います。
func NewPriceService(source PriceSource, store CacheStore, maxAge time.Duration) *PriceService {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &PriceService{
		source:   source,
		cache:    NewPriceCache(store),
		cacheKey: DefaultCacheKey,
		maxAge:   maxAge,
	}
}

// Prices は絞り込み済みの価格列を返します。
func (s *PriceService) Prices(ctx context.Context, now time.Time, horizon time.Duration) ([]entity.PriceSample, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	raw, err := s.cache.GetOrFetch(ctx, s.cacheKey, s.maxAge, now, s.source.FetchPrices)
	if err != nil {
		return nil, err
	}
	return FilterForward(raw, now, horizon), nil
}

// Summary は集計結果を返します。データ不足の場合は domain.ErrInsufficientData を
// 返すので、呼び出し側は「データ不足」表示に分岐してください。
func (s *PriceService) Summary(ctx context.Context, now time.Time, horizon time.Duration, windowLen int) (entity.Summary, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	if windowLen < 1 {
		windowLen = DefaultWindowLen
	}
	raw, err := s.cache.GetOrFetch(ctx, s.cacheKey, s.maxAge, now, s.source.FetchPrices)
	if err != nil {
		return entity.Summary{}, err
	}
	return BuildSummary(raw, now, horizon, windowLen)
}
