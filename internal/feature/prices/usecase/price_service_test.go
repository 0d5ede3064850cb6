package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"powerwidget/internal/feature/prices/domain"
	"powerwidget/internal/feature/prices/domain/entity"
	"powerwidget/internal/feature/prices/usecase"
)

// mockPriceSource はPriceSourceインターフェースのモック実装です。
type mockPriceSource struct {
	FetchPricesFunc func(ctx context.Context) ([]entity.PriceSample, error)
	FetchCalls      int
}

func (m *mockPriceSource) FetchPrices(ctx context.Context) ([]entity.PriceSample, error) {
	m.FetchCalls++
	if m.FetchPricesFunc != nil {
		return m.FetchPricesFunc(ctx)
	}
	return nil, errors.New("FetchPricesFunc is not implemented")
}

// TestPriceService_Summary はサービス全体の流れ（キャッシュ → 絞り込み → 集計）を検証します。
func TestPriceService_Summary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &mockPriceSource{
		FetchPricesFunc: func(ctx context.Context) ([]entity.PriceSample, error) {
			return hourly(now.Add(-1*time.Hour), 10, 8, 8, 8, 8, 12, 15, 20, 18, 14, 9, 8, 8, 10), nil
		},
	}

	svc := usecase.NewPriceService(source, &fakeStore{}, 2*time.Hour)
	ctx := context.Background()

	sum, err := svc.Summary(ctx, now, 12*time.Hour, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Min != 8 || sum.Max != 20 {
		t.Errorf("expected min 8 max 20, got %v %v", sum.Min, sum.Max)
	}
	if sum.Window == nil || sum.Window.StartIndex != 0 {
		t.Errorf("unexpected window: %+v", sum.Window)
	}

	// 2回目はキャッシュから。プロバイダーへの問い合わせは増えない。
	if _, err := svc.Summary(ctx, now.Add(30*time.Minute), 12*time.Hour, 4); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if source.FetchCalls != 1 {
		t.Errorf("expected 1 provider fetch, got %d", source.FetchCalls)
	}
}

// TestPriceService_Summary_Defaults は horizon と windowLen が未指定（0以下）の場合に
// デフォルト値が使われることを検証します。
func TestPriceService_Summary_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &mockPriceSource{
		FetchPricesFunc: func(ctx context.Context) ([]entity.PriceSample, error) {
			// 24時間分。デフォルト horizon 12h なら13サンプルが残る。
			return hourly(now, 5, 5, 5, 5, 1, 1, 1, 1, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5), nil
		},
	}

	svc := usecase.NewPriceService(source, &fakeStore{}, 0)
	sum, err := svc.Summary(context.Background(), now, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sum.Series) != 13 {
		t.Errorf("expected 13 samples with default horizon, got %d", len(sum.Series))
	}
	if sum.Window == nil || sum.Window.Length != usecase.DefaultWindowLen {
		t.Errorf("expected default window length %d, got %+v", usecase.DefaultWindowLen, sum.Window)
	}
	if sum.Window.StartIndex != 4 {
		t.Errorf("expected window start 4, got %d", sum.Window.StartIndex)
	}
}

// TestPriceService_Summary_SourceError はプロバイダー障害がそのまま伝播することを検証します。
func TestPriceService_Summary_SourceError(t *testing.T) {
	t.Parallel()

	source := &mockPriceSource{
		FetchPricesFunc: func(ctx context.Context) ([]entity.PriceSample, error) {
			return nil, ErrFetch
		},
	}

	svc := usecase.NewPriceService(source, &fakeStore{}, 2*time.Hour)
	_, err := svc.Summary(context.Background(), time.Now(), 12*time.Hour, 4)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
}

// TestPriceService_Summary_InsufficientData はデータ不足がセンチネルエラーとして
// 返ることを検証します。
func TestPriceService_Summary_InsufficientData(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &mockPriceSource{
		FetchPricesFunc: func(ctx context.Context) ([]entity.PriceSample, error) {
			return hourly(now.Add(-24*time.Hour), 1, 2, 3), nil
		},
	}

	svc := usecase.NewPriceService(source, &fakeStore{}, 2*time.Hour)
	_, err := svc.Summary(context.Background(), now, 12*time.Hour, 4)
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

// TestPriceService_Prices は絞り込み済みの価格列だけを返す操作を検証します。
func TestPriceService_Prices(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &mockPriceSource{
		FetchPricesFunc: func(ctx context.Context) ([]entity.PriceSample, error) {
			return hourly(now.Add(-2*time.Hour), 9, 9, 1, 2, 3), nil
		},
	}

	svc := usecase.NewPriceService(source, &fakeStore{}, 2*time.Hour)
	got, err := svc.Prices(context.Background(), now, 12*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}
	if got[0].Price != 1 {
		t.Errorf("expected first kept price 1, got %v", got[0].Price)
	}
}
