// Package usecase はスポット価格の集計・キャッシュのビジネスロジックを実装します。
package usecase

import (
	"math"
	"sort"
	"time"

	"powerwidget/internal/feature/prices/domain"
	"powerwidget/internal/feature/prices/domain/entity"
)

const (
	// DefaultHorizon は表示対象とする先読み期間のデフォルト値です。
	DefaultHorizon = 12 * time.Hour
	// DefaultWindowLen は最安区間を探す際の連続サンプル数のデフォルト値です。
	DefaultWindowLen = 4
)

// FilterForward は now から horizon 先までに開始するサンプルだけを残し、
// 開始時刻の昇順に並べ替えて返します。判定に使うのはサンプルの開始時刻のみで、
// 終了時刻（Till）は見ません。入力は変更しません。
func FilterForward(samples []entity.PriceSample, now time.Time, horizon time.Duration) []entity.PriceSample {
	limit := now.Add(horizon)
	out := make([]entity.PriceSample, 0, len(samples))
	for _, s := range samples {
		if s.From.Before(now) || s.From.After(limit) {
			continue
		}
		out = append(out, s)
	}
	// 同時刻サンプルの順序を入力順に固定するため stable sort を使う
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].From.Before(out[j].From)
	})
	return out
}

// FindCheapestWindow は values の中で合計が最小となる長さ windowLen の連続区間を探し、
// その開始インデックスを返します。有効な区間が存在しない場合（len(values) < windowLen）
// は ok=false を返します。合計が同じ区間が複数ある場合は最も早い区間を選びます。
func FindCheapestWindow(values []float64, windowLen int) (entity.CheapestWindow, bool) {
	if windowLen < 1 || len(values) < windowLen {
		return entity.CheapestWindow{}, false
	}

	sum := 0.0
	for _, v := range values[:windowLen] {
		sum += v
	}

	best := sum
	bestIdx := 0
	for i := 1; i+windowLen <= len(values); i++ {
		sum += values[i+windowLen-1] - values[i-1]
		// 同値は先頭優先なので厳密な < で比較する
		if sum < best {
			best = sum
			bestIdx = i
		}
	}
	return entity.CheapestWindow{StartIndex: bestIdx, Length: windowLen}, true
}

// BuildSummary は生の価格列を絞り込み、最小・最大と最安区間を計算して Summary を組み立てます。
// 絞り込み後のサンプルが2件未満の場合は domain.ErrInsufficientData を返します。
// 最安区間だけが求められない場合（windowLen 未満のサンプル数）は Window を nil のまま返します。
func BuildSummary(raw []entity.PriceSample, now time.Time, horizon time.Duration, windowLen int) (entity.Summary, error) {
	series := FilterForward(raw, now, horizon)
	if len(series) < 2 {
		return entity.Summary{}, domain.ErrInsufficientData
	}

	prices := make([]float64, len(series))
	min, max := series[0].Price, series[0].Price
	for i, s := range series {
		prices[i] = s.Price
		if s.Price < min {
			min = s.Price
		}
		if s.Price > max {
			max = s.Price
		}
	}

	// 負の価格が無い限りチャートの基準線は0に固定する（描画側への指示値）
	baseline := 0.0
	if min < 0 {
		baseline = min
	}

	sum := entity.Summary{Series: series, Min: min, Max: max, Baseline: baseline}

	if w, ok := FindCheapestWindow(prices, windowLen); ok {
		w.HoursOffset = int(math.Round(series[w.StartIndex].From.Sub(now).Hours()))
		sum.Window = &w
	}
	return sum, nil
}
