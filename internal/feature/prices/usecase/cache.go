package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"powerwidget/internal/feature/prices/domain/entity"
)

// CacheStore は「キーに対するblobの読み書きと最終書き込み時刻」だけを提供する
// 最小限のストレージ抽象です。Goの慣例に従い、インターフェースは利用者
// （usecase）側で定義します。
type CacheStore interface {
	// Exists はキーに対応するエントリが存在するかを返します。
	Exists(ctx context.Context, key string) (bool, error)
	// AgeOf はエントリの経過時間（now - writtenAt）を返します。
	// エントリが存在しない場合の値は未定義です。
	AgeOf(ctx context.Context, key string, now time.Time) (time.Duration, error)
	// Read はキーに対応するblobを返します。
	Read(ctx context.Context, key string) ([]byte, error)
	// Write はblobを書き込み、最終書き込み時刻を now に更新します。
	Write(ctx context.Context, key string, payload []byte, now time.Time) error
}

// FetchFunc は価格プロバイダーへの1回分の問い合わせです。
type FetchFunc func(ctx context.Context) ([]entity.PriceSample, error)

// PriceCache は鮮度（maxAge）でゲートされた単一スロットのキャッシュです。
// ウィジェットの実行は短命なシングルスレッドのプロセスなのでロックは持ちません。
type PriceCache struct {
	store CacheStore
}

// NewPriceCache は指定されたストアを使うPriceCacheを生成します。
func NewPriceCache(store CacheStore) *PriceCache {
	return &PriceCache{store: store}
}

// GetOrFetch はキャッシュが十分新しければ（age < maxAge）保存済みの価格列を返し、
// fetch は呼びません。古い・存在しない・壊れている場合は fetch を実行し、成功すれば
// 結果をまるごと上書き保存してから返します。fetch の失敗はそのまま伝播します。
// 古いキャッシュを代替として返すことはしません。
func (c *PriceCache) GetOrFetch(ctx context.Context, key string, maxAge time.Duration, now time.Time, fetch FetchFunc) ([]entity.PriceSample, error) {
	if samples, ok := c.readFresh(ctx, key, maxAge, now); ok {
		return samples, nil
	}

	samples, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("encode price payload: %w", err)
	}
	if err := c.store.Write(ctx, key, b, now); err != nil {
		return nil, fmt.Errorf("store price payload: %w", err)
	}
	return samples, nil
}

// readFresh は鮮度条件を満たすキャッシュエントリの読み出しを試みます。
func (c *PriceCache) readFresh(ctx context.Context, key string, maxAge time.Duration, now time.Time) ([]entity.PriceSample, bool) {
	ok, err := c.store.Exists(ctx, key)
	if err != nil || !ok {
		return nil, false
	}

	age, err := c.store.AgeOf(ctx, key, now)
	if err != nil || age >= maxAge {
		return nil, false
	}

	b, err := c.store.Read(ctx, key)
	if err != nil {
		return nil, false
	}

	var samples []entity.PriceSample
	if err := json.Unmarshal(b, &samples); err != nil {
		// 壊れたエントリは再取得で上書きされる
		slog.Warn("discarding corrupted cache entry", "key", key, "error", err)
		return nil, false
	}
	return samples, true
}
